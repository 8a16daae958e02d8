// Package logging provides concrete implementations of the deckpick.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed messages to stderr (or any io.Writer)
//   - FileLogger: Appends timestamped lines to a size-rotated log file
//   - MultiLogger: Fans each message out to several loggers
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
