// Package config loads, normalizes, and validates movieshelf configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// MOVIESHELF_API_TOKEN. The Config type gathers every knob the server and CLI
// need: the HTTP bind address, the state directory, logging, and the seed
// catalogue the store starts from.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
