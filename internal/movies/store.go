package movies

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"movieshelf/internal/logging"
)

// Store holds the ordered movie collection. It is safe for concurrent use;
// an Append is visible to every read that starts after it returns.
type Store struct {
	mu     sync.RWMutex
	movies []Movie
	index  map[int64]int
	maxID  int64
	logger *slog.Logger
}

// Option customizes a Store.
type Option func(*Store)

// WithLogger attaches a logger used to record appends.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New builds a store seeded with the given movies. Seed ids must be positive
// and unique and every title must contain visible text.
func New(seed []Movie, opts ...Option) (*Store, error) {
	s := &Store{
		movies: make([]Movie, 0, len(seed)),
		index:  make(map[int64]int, len(seed)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.NewComponentLogger(s.logger, "movie-store")

	for i, m := range seed {
		if m.ID <= 0 {
			return nil, &ValidationError{Field: fmt.Sprintf("seed[%d].id", i), Reason: "must be positive"}
		}
		if _, dup := s.index[m.ID]; dup {
			return nil, &ValidationError{Field: fmt.Sprintf("seed[%d].id", i), Reason: fmt.Sprintf("duplicates id %d", m.ID)}
		}
		if blank(m.Title) {
			return nil, &ValidationError{Field: fmt.Sprintf("seed[%d].title", i), Reason: "must not be blank"}
		}
		s.insert(m)
	}
	return s, nil
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

// Get returns the movie with the given id.
func (s *Store) Get(id int64) (Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.index[id]
	if !ok {
		return Movie{}, false
	}
	return s.movies[pos], true
}

// Len reports the number of movies in the collection.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movies)
}

// Append adds a movie with the next free id. The title is stored verbatim;
// empty or whitespace-only titles are rejected and leave the collection
// untouched.
func (s *Store) Append(title string) (Movie, error) {
	if blank(title) {
		return Movie{}, &ValidationError{Field: "title", Reason: "must not be blank"}
	}

	s.mu.Lock()
	if s.maxID == math.MaxInt64 {
		s.mu.Unlock()
		return Movie{}, &ValidationError{Field: "id", Reason: "id space exhausted"}
	}
	m := Movie{ID: s.maxID + 1, Title: title}
	s.insert(m)
	count := len(s.movies)
	s.mu.Unlock()

	s.logger.Info("movie added",
		logging.Int64(logging.FieldMovieID, m.ID),
		logging.String("title", m.Title),
		logging.Int("collection_size", count),
	)
	return m, nil
}

// insert requires s.mu held for writing (or exclusive access during New).
func (s *Store) insert(m Movie) {
	s.index[m.ID] = len(s.movies)
	s.movies = append(s.movies, m)
	if m.ID > s.maxID {
		s.maxID = m.ID
	}
}
