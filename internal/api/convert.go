package api

import "movieshelf/internal/movies"

// FromMovie converts a store record to its API representation.
func FromMovie(m movies.Movie) Movie {
	return Movie{ID: m.ID, Title: m.Title}
}

// FromMovies converts a collection snapshot, always returning a non-nil
// slice so an empty collection encodes as [].
func FromMovies(list []movies.Movie) []Movie {
	out := make([]Movie, 0, len(list))
	for _, m := range list {
		out = append(out, FromMovie(m))
	}
	return out
}
