package store

import (
	"errors"
	"fmt"
)

var (
	// ErrSeedEmpty is returned when a seed document contains no jokes key at all.
	ErrSeedEmpty = errors.New("seed document has no jokes")

	// ErrSeedInvalidID is returned when a seed entry carries a non-positive id.
	ErrSeedInvalidID = errors.New("seed joke id must be a positive integer")
)

// ValidateSeed checks every entry of a seed list. Duplicate ids are allowed, since the
// collection itself never enforces uniqueness.
func ValidateSeed(jokes []Joke) error {
	for i, j := range jokes {
		if j.ID <= 0 {
			return fmt.Errorf("%w: entry %d has id %d", ErrSeedInvalidID, i, j.ID)
		}
	}
	return nil
}
