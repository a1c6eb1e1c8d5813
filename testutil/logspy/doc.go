// Package logspy provides a slog.Handler test double that captures log records,
// so tests can assert on what the eventbuilder CLI logged.
package logspy
