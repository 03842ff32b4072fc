// Package logging assembles the structured slog loggers used across
// movieshelf.
//
// It owns the console and JSON handlers, level parsing, output fan-out to
// stdout and an optional log file, per-component level overrides, and
// context helpers that tag log lines with the request correlation id. A no-op
// logger is provided for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
