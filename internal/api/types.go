package api

// Movie describes a catalogue entry in a transport-friendly format.
type Movie struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// MovieListResponse wraps the full collection in insertion order.
type MovieListResponse struct {
	Movies []Movie `json:"movies"`
}

// MovieResponse wraps a single movie.
type MovieResponse struct {
	Movie Movie `json:"movie"`
}

// CreateMovieRequest is the body accepted by POST /api/movies.
type CreateMovieRequest struct {
	Title string `json:"title"`
}

// HealthResponse reports server liveness.
type HealthResponse struct {
	Status string `json:"status"`
	Movies int    `json:"movies"`
}

// ErrorResponse carries a human-readable failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}
