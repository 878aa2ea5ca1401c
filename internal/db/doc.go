// Package db opens the storage backend chosen in configuration and applies
// schema migrations for the SQL backends (goose, embedded SQL files).
package db
