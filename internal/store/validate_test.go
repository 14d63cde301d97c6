package store

import (
	"errors"
	"testing"
)

func TestValidateSeed(t *testing.T) {
	tests := []struct {
		name    string
		jokes   []Joke
		wantErr error
	}{
		{name: "empty list", jokes: nil, wantErr: nil},
		{name: "single joke", jokes: []Joke{{ID: 1, JokeText: "a", JokeType: "b"}}, wantErr: nil},
		{name: "duplicate ids allowed", jokes: []Joke{{ID: 1}, {ID: 1}}, wantErr: nil},
		{name: "empty text allowed", jokes: []Joke{{ID: 4}}, wantErr: nil},

		{name: "zero id", jokes: []Joke{{ID: 0}}, wantErr: ErrSeedInvalidID},
		{name: "negative id", jokes: []Joke{{ID: 1}, {ID: -3}}, wantErr: ErrSeedInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeed(tt.jokes)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateSeed() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSeed() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
