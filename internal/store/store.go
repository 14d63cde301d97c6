package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a requested joke does not exist.
	ErrNotFound = errors.New("not found")
)

// JokeStoreIface exposes all joke data operations.
// Handlers never touch the collection directly; all access goes through this interface.
type JokeStoreIface interface {
	Random(ctx context.Context) (*Joke, error)
	GetByID(ctx context.Context, id int) (*Joke, error)
	ListByType(ctx context.Context, jokeType string) ([]*Joke, error)
	List(ctx context.Context) ([]*Joke, error)
	Count(ctx context.Context) int
	Create(ctx context.Context, text, jokeType string) (*Joke, error)
	Update(ctx context.Context, id int, text, jokeType string) (*Joke, error)
	Patch(ctx context.Context, id int, p JokePatch) (*Joke, error)
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error
}

var _ JokeStoreIface = (*JokeStore)(nil)
