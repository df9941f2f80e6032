package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/leagueops/leaguekeeper/internal/model"
	"github.com/leagueops/leaguekeeper/internal/testutil"
)

type StorageSuite struct {
	suite.Suite
	dir     string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.dir = s.T().TempDir()

	storage, err := New(s.dir, testutil.NopLogger())
	s.Require().NoError(err)
	s.storage = storage
	s.ctx = context.Background()
}

func (s *StorageSuite) TestNewSeedsEmptyCollectionFiles() {
	for _, name := range []string{"clubs.json", "players.json", "matches.json", "transfers.json"} {
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		s.Require().NoError(err)
		s.JSONEq("[]", string(data))
	}
}

func (s *StorageSuite) TestNewLeavesExistingFilesAlone() {
	clubs := []model.Club{{ID: 1, Name: "Arsenal", Budget: 100}}
	s.Require().NoError(s.storage.SaveClubs(s.ctx, clubs))

	reopened, err := New(s.dir, testutil.NopLogger())
	s.Require().NoError(err)

	loaded, err := reopened.LoadClubs(s.ctx)
	s.Require().NoError(err)
	s.Equal(clubs, loaded)
}

func (s *StorageSuite) TestClubsRoundTrip() {
	clubs := []model.Club{
		{ID: 1, Name: "Arsenal", Budget: 1000},
		{ID: 2, Name: "Chelsea", Budget: 0},
	}

	s.Require().NoError(s.storage.SaveClubs(s.ctx, clubs))

	loaded, err := s.storage.LoadClubs(s.ctx)
	s.Require().NoError(err)
	s.Equal(clubs, loaded)
}

func (s *StorageSuite) TestPlayersRoundTripKeepsNilClubID() {
	clubA := 1
	players := []model.Player{
		{ID: 1, Name: "Saka", Value: 500, Position: model.PositionAttacker, Age: 23, ClubID: &clubA, TransferCount: 2},
		{ID: 2, Name: "Drifter", Value: 100, Position: model.PositionDefender, Age: 30, ClubID: nil},
	}

	s.Require().NoError(s.storage.SavePlayers(s.ctx, players))

	loaded, err := s.storage.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal(players, loaded)
	s.Nil(loaded[1].ClubID)
}

func (s *StorageSuite) TestMatchesRoundTrip() {
	matches := []model.Match{
		{
			ID:            1,
			Club1ID:       1,
			Club2ID:       2,
			ScheduledTime: time.Date(2025, 8, 1, 15, 0, 0, 0, time.UTC),
			Status:        model.StatusScheduled,
			ReminderSent:  true,
		},
	}

	s.Require().NoError(s.storage.SaveMatches(s.ctx, matches))

	loaded, err := s.storage.LoadMatches(s.ctx)
	s.Require().NoError(err)
	s.Equal(matches, loaded)
}

func (s *StorageSuite) TestTransfersRoundTrip() {
	from := 1
	transfers := []model.Transfer{
		{ID: 1, PlayerID: 1, FromClubID: &from, ToClubID: 2, Fee: 500, Timestamp: time.Date(2025, 8, 1, 15, 0, 0, 0, time.UTC)},
	}

	s.Require().NoError(s.storage.SaveTransfers(s.ctx, transfers))

	loaded, err := s.storage.LoadTransfers(s.ctx)
	s.Require().NoError(err)
	s.Equal(transfers, loaded)
}

func (s *StorageSuite) TestLoadMissingFileReturnsEmpty() {
	s.Require().NoError(os.Remove(filepath.Join(s.dir, "clubs.json")))

	clubs, err := s.storage.LoadClubs(s.ctx)
	s.Require().NoError(err)
	s.NotNil(clubs)
	s.Empty(clubs)
}

func (s *StorageSuite) TestLoadCorruptFileReturnsEmpty() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "players.json"), []byte("{not json"), 0o644))

	players, err := s.storage.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	s.NotNil(players)
	s.Empty(players)
}

func (s *StorageSuite) TestSaveNilWritesEmptyArray() {
	s.Require().NoError(s.storage.SaveClubs(s.ctx, nil))

	data, err := os.ReadFile(filepath.Join(s.dir, "clubs.json"))
	s.Require().NoError(err)
	s.JSONEq("[]", string(data))
}

func (s *StorageSuite) TestSaveOverwritesCorruptFile() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "clubs.json"), []byte("garbage"), 0o644))

	clubs := []model.Club{{ID: 1, Name: "Arsenal"}}
	s.Require().NoError(s.storage.SaveClubs(s.ctx, clubs))

	loaded, err := s.storage.LoadClubs(s.ctx)
	s.Require().NoError(err)
	s.Equal(clubs, loaded)
}
