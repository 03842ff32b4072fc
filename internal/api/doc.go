// Package api defines wire-format types and the service layer behind the
// JSON endpoints. It translates movies.Movie values into transport DTOs so
// HTTP handlers and the CLI client never share internal types.
//
// # Key Types
//
// Movie: transport representation of a catalogue entry.
//
// MovieListResponse / MovieResponse: envelopes for list and single-item
// responses.
//
// HealthResponse: liveness plus collection size.
//
// ErrorResponse: the body written for every non-2xx JSON response.
//
// # Service
//
// MovieService wraps a MovieStore and exposes List, Describe, Create and
// Health. Describe reports a miss as movies.ErrNotFound; Create surfaces the
// store's validation error unchanged so callers can classify it.
//
// # Status Mapping
//
// StatusFor maps error kinds onto HTTP status codes: validation -> 422,
// not_found -> 404, everything else -> 500.
package api
