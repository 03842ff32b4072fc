package web

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"movieshelf/internal/api"
	"movieshelf/internal/logging"
	"movieshelf/internal/movies"
)

const maxBodyBytes = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Health(r.Context()))
}

func (s *Server) handleMovies(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := s.svc.List(r.Context())
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, api.MovieListResponse{Movies: items})
	case http.MethodPost:
		authMiddleware(s.token, s.handleCreateMovie)(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var req api.CreateMovieRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	movie, err := s.svc.Create(r.Context(), req.Title)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	logging.WithContext(r.Context(), s.logger).Debug("movie created from api",
		logging.Int64(logging.FieldMovieID, movie.ID),
	)
	writeJSON(w, http.StatusCreated, api.MovieResponse{Movie: movie})
}

func (s *Server) handleMovie(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	idStr := strings.TrimPrefix(r.URL.Path, "/api/movies/")
	if idStr == "" || strings.Contains(idStr, "/") {
		writeError(w, http.StatusNotFound, "movie not found")
		return
	}
	id, ok := movies.ParseID(idStr)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid movie id")
		return
	}
	movie, err := s.svc.Describe(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.MovieResponse{Movie: movie})
}

func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := api.StatusFor(err)
	if status == http.StatusInternalServerError {
		logging.WithContext(r.Context(), s.logger).Error("api request failed", logging.Error(err))
		writeError(w, status, "internal server error")
		return
	}
	if errors.Is(err, movies.ErrNotFound) {
		writeError(w, status, "movie not found")
		return
	}
	writeError(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Default().Error("failed to encode response", logging.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, api.ErrorResponse{Error: message})
}
