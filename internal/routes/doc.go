// Package routes maps request paths to the view composition that renders
// them.
//
// Resolve is a pure function of the path: every navigation re-evaluates it,
// and there is no terminal state. The movie list is always part of the page
// for paths under /movies; the child slot holds a placeholder, the detail of
// one movie, or the create form. Movie identifiers in paths are parsed with
// movies.ParseID, so lookups always compare numerically.
//
// Navigator is the capability handed to flows that move the user elsewhere
// (the create form after a successful submit). No global history exists.
package routes
