package store

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
)

// Joke is a single record in the collection. ID is a stored value assigned at creation
// time, not a position, so it survives reindexing and may repeat after deletions.
type Joke struct {
	ID       int    `json:"id" yaml:"id"`
	JokeText string `json:"jokeText" yaml:"jokeText"`
	JokeType string `json:"jokeType" yaml:"jokeType"`
}

// JokePatch carries the fields a partial update overwrites. Nil fields are left as-is.
type JokePatch struct {
	Text *string
	Type *string
}

// JokeStore is the in-memory, insertion-ordered implementation of JokeStoreIface.
// A single RWMutex guards the collection. Every method hands out copies.
type JokeStore struct {
	mu    sync.RWMutex
	jokes []Joke
	intn  func(n int) int
}

// Option configures a JokeStore.
type Option func(*JokeStore)

// WithRand replaces the random index source used by Random. intn must return a value
// in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(s *JokeStore) { s.intn = intn }
}

// NewJokeStore returns a store seeded with a copy of seed, in order.
func NewJokeStore(seed []Joke, opts ...Option) *JokeStore {
	s := &JokeStore{
		jokes: append(make([]Joke, 0, len(seed)), seed...),
		intn:  rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Random returns a uniformly chosen joke, or ErrNotFound when the collection is empty.
func (s *JokeStore) Random(_ context.Context) (*Joke, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.jokes) == 0 {
		return nil, ErrNotFound
	}
	j := s.jokes[s.intn(len(s.jokes))]
	return &j, nil
}

// GetByID returns the first joke whose ID equals id, or ErrNotFound.
func (s *JokeStore) GetByID(_ context.Context, id int) (*Joke, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	j := s.jokes[i]
	return &j, nil
}

// ListByType returns every joke whose type equals jokeType case-insensitively, in
// insertion order. The result is empty, not nil, when nothing matches.
func (s *JokeStore) ListByType(_ context.Context, jokeType string) ([]*Joke, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Joke, 0)
	for _, j := range s.jokes {
		if strings.EqualFold(j.JokeType, jokeType) {
			out = append(out, &j)
		}
	}
	return out, nil
}

// List returns the whole collection in insertion order.
func (s *JokeStore) List(_ context.Context) ([]*Joke, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Joke, 0, len(s.jokes))
	for _, j := range s.jokes {
		out = append(out, &j)
	}
	return out, nil
}

// Count returns the current collection size.
func (s *JokeStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jokes)
}

// Create appends a joke with ID len+1 and returns it. No field is validated.
func (s *JokeStore) Create(_ context.Context, text, jokeType string) (*Joke, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j := Joke{ID: len(s.jokes) + 1, JokeText: text, JokeType: jokeType}
	s.jokes = append(s.jokes, j)
	return &j, nil
}

// Update replaces both text and type of the first joke with the given ID.
func (s *JokeStore) Update(_ context.Context, id int, text, jokeType string) (*Joke, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	s.jokes[i].JokeText = text
	s.jokes[i].JokeType = jokeType
	j := s.jokes[i]
	return &j, nil
}

// Patch overwrites only the fields set in p on the first joke with the given ID.
func (s *JokeStore) Patch(_ context.Context, id int, p JokePatch) (*Joke, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	if p.Text != nil {
		s.jokes[i].JokeText = *p.Text
	}
	if p.Type != nil {
		s.jokes[i].JokeType = *p.Type
	}
	j := s.jokes[i]
	return &j, nil
}

// Delete removes the first joke with the given ID and closes the gap. IDs of the
// remaining jokes are untouched.
func (s *JokeStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.jokes = slices.Delete(s.jokes, i, i+1)
	return nil
}

// DeleteAll empties the collection, keeping it as an empty sequence.
func (s *JokeStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.jokes)
	s.jokes = s.jokes[:0]
	return nil
}

// indexOf returns the position of the first joke with the given ID, or -1.
// Callers must hold mu.
func (s *JokeStore) indexOf(id int) int {
	for i := range s.jokes {
		if s.jokes[i].ID == id {
			return i
		}
	}
	return -1
}
