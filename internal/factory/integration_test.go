package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/leagueops/leaguekeeper/internal/model"
)

// IntegrationSuite drives the whole league through the wired services
type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) TearDownTest() {
	s.app.Scheduler.Stop()
}

func (s *IntegrationSuite) TestSeasonFlow() {
	// Found two clubs
	arsenal, err := s.app.ClubService.Create(s.ctx, "Arsenal", 1000)
	s.Require().NoError(err)
	chelsea, err := s.app.ClubService.Create(s.ctx, "Chelsea", 2000)
	s.Require().NoError(err)

	// Sign a player at Arsenal
	saka, err := s.app.PlayerService.Create(s.ctx, "Saka", 500, model.PositionAttacker, 23, &arsenal.ID)
	s.Require().NoError(err)

	// Chelsea buys him
	record, err := s.app.TransferService.Transfer(s.ctx, saka.ID, chelsea.ID, 1500)
	s.Require().NoError(err)
	s.Equal(int64(1500), record.Fee)

	arsenal, err = s.app.ClubService.Get(s.ctx, arsenal.ID)
	s.Require().NoError(err)
	s.Equal(int64(2500), arsenal.Budget)
	chelsea, err = s.app.ClubService.Get(s.ctx, chelsea.ID)
	s.Require().NoError(err)
	s.Equal(int64(500), chelsea.Budget)

	saka, err = s.app.PlayerService.Get(s.ctx, saka.ID)
	s.Require().NoError(err)
	s.Equal(chelsea.ID, *saka.ClubID)
	s.Equal(1, saka.TransferCount)

	// Schedule the derby and let the reminder fire
	kickoff := s.app.MockClock.Now().Add(30 * time.Minute)
	m, err := s.app.MatchService.Create(s.ctx, arsenal.ID, chelsea.ID, kickoff)
	s.Require().NoError(err)

	s.app.MockClock.BlockUntil(1)
	s.app.MockClock.Advance(25 * time.Minute)

	select {
	case id := <-s.app.MockNotifier.Fired:
		s.Equal(m.ID, id)
	case <-time.After(2 * time.Second):
		s.FailNow("reminder did not fire")
	}

	m, err = s.app.MatchService.Get(s.ctx, m.ID)
	s.Require().NoError(err)
	s.True(m.ReminderSent)

	// Stats reflect everything that happened
	overview, err := s.app.StatsService.LeagueOverview(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, overview.TotalClubs)
	s.Equal(1, overview.TotalPlayers)
	s.Equal(1, overview.TotalMatches)
	s.Equal(1, overview.TotalTransfers)
}

func (s *IntegrationSuite) TestCancelledMatchSendsNoReminder() {
	arsenal, err := s.app.ClubService.Create(s.ctx, "Arsenal", 0)
	s.Require().NoError(err)
	chelsea, err := s.app.ClubService.Create(s.ctx, "Chelsea", 0)
	s.Require().NoError(err)

	m, err := s.app.MatchService.Create(s.ctx, arsenal.ID, chelsea.ID, s.app.MockClock.Now().Add(10*time.Minute))
	s.Require().NoError(err)

	s.app.MockClock.BlockUntil(1)
	s.app.MockClock.Advance(time.Minute)

	_, err = s.app.MatchService.Cancel(s.ctx, m.ID)
	s.Require().NoError(err)

	s.app.MockClock.Advance(9 * time.Minute)

	select {
	case <-s.app.MockNotifier.Fired:
		s.FailNow("reminder fired for cancelled match")
	case <-time.After(100 * time.Millisecond):
	}
	s.Equal(0, s.app.MockNotifier.CallCount())
}

func (s *IntegrationSuite) TestDeleteClubCascades() {
	arsenal, err := s.app.ClubService.Create(s.ctx, "Arsenal", 0)
	s.Require().NoError(err)
	_, err = s.app.PlayerService.Create(s.ctx, "Saka", 500, model.PositionAttacker, 23, &arsenal.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.app.ClubService.Delete(s.ctx, arsenal.ID))

	players, err := s.app.PlayerService.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *IntegrationSuite) TestSnapshotRestoreAcrossMutations() {
	arsenal, err := s.app.ClubService.Create(s.ctx, "Arsenal", 1000)
	s.Require().NoError(err)

	snapshot, err := s.app.AdminService.Take(s.ctx)
	s.Require().NoError(err)

	_, err = s.app.ClubService.SetBudget(s.ctx, arsenal.ID, 0)
	s.Require().NoError(err)
	_, err = s.app.ClubService.Create(s.ctx, "Chelsea", 50)
	s.Require().NoError(err)

	s.Require().NoError(s.app.AdminService.Restore(s.ctx, snapshot))

	clubs, err := s.app.ClubService.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(clubs, 1)
	s.Equal(int64(1000), clubs[0].Budget)
}
