// Package main hosts the movieshelf CLI entrypoint and command graph.
//
// `serve` runs the HTTP server in the foreground. The catalogue commands
// (`list`, `show`, `add`, `status`) talk to a running server over its JSON
// API, so they see the same process-local collection the browser does.
// `route` resolves a path offline, and `config` scaffolds, prints and
// validates configuration.
//
// Configuration is resolved lazily once per invocation; commands annotated
// with skipConfigLoad never touch it.
package main
