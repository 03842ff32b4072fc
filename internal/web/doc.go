// Package web hosts the movieshelf HTTP server.
//
// The server renders the catalogue pages (list, placeholder, detail, create
// form) for every path under /movies, answers the JSON API under /api, and
// wraps every request with a request id and an access log line. A file lock
// under the state directory keeps a second server from starting against the
// same configuration.
//
// Each request re-runs the router: the Store is read at render time, and a
// successful POST /movies/new appends before the 303 redirect is written, so
// the following GET /movies already lists the new entry.
package web
