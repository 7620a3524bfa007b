// Package logging provides structured logging using Go's standard library
// log/slog. It builds JSON or text handlers for the holy-diver CLI and for
// applications embedding the library; the required-key warning channel
// reports through whatever logger is installed as the slog default.
package logging
