// Package logging provides concrete implementations of the egrn.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed lines to stderr with thread-safe output
//   - SlogLogger: Routes messages through log/slog with a tint handler
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
