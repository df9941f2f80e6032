package storage

import (
	"sort"
	"sync"
)

// Collection identifies one of the four persisted collections. The constant
// order is the canonical lock order.
type Collection int

const (
	CollectionClubs Collection = iota
	CollectionPlayers
	CollectionMatches
	CollectionTransfers
)

// Guard provides collection-scoped mutual exclusion for mutating operations.
//
// Every load-modify-save cycle on a collection must run while holding that
// collection's lock, or a concurrent mutation's save silently discards the
// other's update. Operations spanning multiple collections (a transfer
// touches clubs, players and transfers) acquire all of their locks up front,
// always in canonical collection order, so two such operations cannot
// deadlock.
type Guard struct {
	mu [4]sync.Mutex
}

// NewGuard creates a Guard with one lock per collection
func NewGuard() *Guard {
	return &Guard{}
}

// Acquire locks the given collections in canonical order and returns a
// release function that unlocks them in reverse order. Duplicate collections
// are locked once.
func (g *Guard) Acquire(cols ...Collection) (release func()) {
	locked := make([]Collection, 0, len(cols))
	for _, c := range cols {
		seen := false
		for _, l := range locked {
			if l == c {
				seen = true
				break
			}
		}
		if !seen {
			locked = append(locked, c)
		}
	}
	sort.Slice(locked, func(i, j int) bool { return locked[i] < locked[j] })

	for _, c := range locked {
		g.mu[c].Lock()
	}
	return func() {
		for i := len(locked) - 1; i >= 0; i-- {
			g.mu[locked[i]].Unlock()
		}
	}
}
