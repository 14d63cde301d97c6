package store

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed/jokes.yaml
var defaultSeed []byte

type seedDocument struct {
	Jokes []Joke `yaml:"jokes"`
}

// DefaultSeed returns the built-in seed list.
func DefaultSeed() ([]Joke, error) {
	return ParseSeed(bytes.NewReader(defaultSeed))
}

// LoadSeed reads the seed list from path, or the built-in list when path is empty.
func LoadSeed(path string) ([]Joke, error) {
	if path == "" {
		return DefaultSeed()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	jokes, err := ParseSeed(f)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return jokes, nil
}

// ParseSeed decodes and validates a YAML seed document of the form
//
//	jokes:
//	  - id: 1
//	    jokeText: "..."
//	    jokeType: General
func ParseSeed(r io.Reader) ([]Joke, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc seedDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrSeedEmpty
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if doc.Jokes == nil {
		return nil, ErrSeedEmpty
	}
	if err := ValidateSeed(doc.Jokes); err != nil {
		return nil, err
	}
	return doc.Jokes, nil
}

// EncodeSeed writes jokes as a YAML seed document.
func EncodeSeed(w io.Writer, jokes []Joke) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seedDocument{Jokes: jokes}); err != nil {
		return fmt.Errorf("encode seed: %w", err)
	}
	return enc.Close()
}
