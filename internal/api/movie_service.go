package api

import (
	"context"
	"fmt"

	"movieshelf/internal/movies"
)

// MovieStore abstracts the collection operations needed by the API.
type MovieStore interface {
	All() []movies.Movie
	Get(id int64) (movies.Movie, bool)
	Append(title string) (movies.Movie, error)
	Len() int
}

// MovieService exposes catalogue operations returning API DTOs.
type MovieService struct {
	store MovieStore
}

// NewMovieService constructs a MovieService around the provided store.
func NewMovieService(store MovieStore) *MovieService {
	if store == nil {
		return nil
	}
	return &MovieService{store: store}
}

// List returns the whole collection in insertion order.
func (s *MovieService) List(ctx context.Context) ([]Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.store == nil {
		return []Movie{}, nil
	}
	return FromMovies(s.store.All()), nil
}

// Describe fetches a single movie. A miss wraps movies.ErrNotFound.
func (s *MovieService) Describe(ctx context.Context, id int64) (Movie, error) {
	if err := ctx.Err(); err != nil {
		return Movie{}, err
	}
	if s == nil || s.store == nil {
		return Movie{}, fmt.Errorf("movie %d: %w", id, movies.ErrNotFound)
	}
	m, ok := s.store.Get(id)
	if !ok {
		return Movie{}, fmt.Errorf("movie %d: %w", id, movies.ErrNotFound)
	}
	return FromMovie(m), nil
}

// Create appends a movie with the given title.
func (s *MovieService) Create(ctx context.Context, title string) (Movie, error) {
	if err := ctx.Err(); err != nil {
		return Movie{}, err
	}
	if s == nil || s.store == nil {
		return Movie{}, fmt.Errorf("create movie: store unavailable")
	}
	m, err := s.store.Append(title)
	if err != nil {
		return Movie{}, err
	}
	return FromMovie(m), nil
}

// Health reports liveness and the current collection size.
func (s *MovieService) Health(context.Context) HealthResponse {
	resp := HealthResponse{Status: "ok"}
	if s != nil && s.store != nil {
		resp.Movies = s.store.Len()
	}
	return resp
}
