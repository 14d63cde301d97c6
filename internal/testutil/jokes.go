// Package testutil holds fixtures shared by the HTTP and store tests.
package testutil

import (
	"testing"

	"github.com/joestump/joe-jokes/internal/store"
)

// ScenarioSeed returns the two-record collection used across the test suites:
// a Math joke with id 1 followed by a Food joke with id 2.
func ScenarioSeed() []store.Joke {
	return []store.Joke{
		{ID: 1, JokeText: "A", JokeType: "Math"},
		{ID: 2, JokeText: "B", JokeType: "Food"},
	}
}

// NewJokeStore returns a fresh store seeded with seed, or with ScenarioSeed when no
// jokes are given. Pass an explicit empty slice through store.NewJokeStore for an
// empty collection.
func NewJokeStore(t *testing.T, seed ...store.Joke) *store.JokeStore {
	t.Helper()
	if len(seed) == 0 {
		seed = ScenarioSeed()
	}
	return store.NewJokeStore(seed)
}
