// Package seed builds the start-up catalogue from configuration.
//
// Inline [[seed.movies]] entries come first, followed by the entries of the
// optional YAML seed file. The YAML file is either a bare list of {id, title}
// mappings or a mapping with a "movies" key holding that list.
package seed

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"movieshelf/internal/config"
	"movieshelf/internal/logging"
	"movieshelf/internal/movies"
)

type fileDocument struct {
	Movies []config.SeedMovie `yaml:"movies"`
}

// Movies returns the seed catalogue described by cfg.
func Movies(cfg *config.Config) ([]movies.Movie, error) {
	if cfg == nil {
		return toMovies(config.DefaultSeed()), nil
	}
	entries := append([]config.SeedMovie(nil), cfg.Seed.Movies...)
	if cfg.Seed.File != "" {
		fromFile, err := ReadFile(cfg.Seed.File)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fromFile...)
	}
	return toMovies(entries), nil
}

// ReadFile parses a YAML seed file.
func ReadFile(path string) ([]config.SeedMovie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML seed data.
func Parse(data []byte) ([]config.SeedMovie, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(trimmed, &node); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var list []config.SeedMovie
		if err := root.Decode(&list); err != nil {
			return nil, fmt.Errorf("parse seed file: %w", err)
		}
		return list, nil
	case yaml.MappingNode:
		var doc fileDocument
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse seed file: %w", err)
		}
		return doc.Movies, nil
	default:
		return nil, fmt.Errorf("parse seed file: expected a list or a mapping with movies, got line %d", root.Line)
	}
}

// NewStore builds a movie store from the configured seed.
func NewStore(cfg *config.Config, logger *slog.Logger) (*movies.Store, error) {
	seed, err := Movies(cfg)
	if err != nil {
		return nil, err
	}
	store, err := movies.New(seed, movies.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}
	logging.NewComponentLogger(logger, "seed").Info("catalogue seeded", logging.Int("movies", store.Len()))
	return store, nil
}

func toMovies(entries []config.SeedMovie) []movies.Movie {
	out := make([]movies.Movie, 0, len(entries))
	for _, e := range entries {
		out = append(out, movies.Movie{ID: e.ID, Title: e.Title})
	}
	return out
}
