package api

import (
	"net/http"

	"movieshelf/internal/movies"
)

// StatusFor maps an error onto the HTTP status code reported to clients.
func StatusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch movies.Kind(err) {
	case "validation":
		return http.StatusUnprocessableEntity
	case "not_found":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
