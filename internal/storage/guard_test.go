package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leagueops/leaguekeeper/internal/model"
)

func TestAcquireReleaseSingleCollection(t *testing.T) {
	g := NewGuard()

	release := g.Acquire(CollectionClubs)
	release()

	// lock must be free again
	release = g.Acquire(CollectionClubs)
	release()
}

func TestAcquireDeduplicates(t *testing.T) {
	g := NewGuard()

	release := g.Acquire(CollectionClubs, CollectionClubs)
	release()
}

func TestAcquireOutOfOrderDoesNotDeadlock(t *testing.T) {
	g := NewGuard()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			release := g.Acquire(CollectionTransfers, CollectionClubs, CollectionPlayers)
			release()
		}()
		go func() {
			defer wg.Done()
			release := g.Acquire(CollectionPlayers, CollectionTransfers, CollectionClubs)
			release()
		}()
	}
	wg.Wait()
}

func TestGuardSerializesLoadModifySave(t *testing.T) {
	// Without the guard, concurrent increments lose updates: both load the
	// same budget, both save, one write wins.
	g := NewGuard()
	store := newCountingStore()
	ctx := context.Background()

	const workers = 100
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := g.Acquire(CollectionClubs)
			defer release()

			clubs, err := store.LoadClubs(ctx)
			require.NoError(t, err)
			clubs[0].Budget++
			require.NoError(t, store.SaveClubs(ctx, clubs))
		}()
	}
	wg.Wait()

	clubs, err := store.LoadClubs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), clubs[0].Budget)
}

// countingStore is a minimal in-memory club store for guard tests
type countingStore struct {
	mu    sync.Mutex
	clubs []model.Club
}

func newCountingStore() *countingStore {
	return &countingStore{clubs: []model.Club{{ID: 1, Name: "Arsenal"}}}
}

func (s *countingStore) LoadClubs(ctx context.Context) ([]model.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Club, len(s.clubs))
	copy(out, s.clubs)
	return out, nil
}

func (s *countingStore) SaveClubs(ctx context.Context, clubs []model.Club) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clubs = make([]model.Club, len(clubs))
	copy(s.clubs, clubs)
	return nil
}
