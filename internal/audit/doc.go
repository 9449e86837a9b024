// Package audit provides asynchronous dispatch of client audit events:
// session mutations, guard decisions, identity fetches, and unauthorized
// responses.
//
// # Design
//
// A Dispatcher forwards events from a buffered channel to a single Sink on a
// dedicated goroutine. Emit never blocks the hot path when DropIfFull is set;
// dropped events are counted, not logged.
//
// # What this package must NOT do
//
//   - Perform network I/O of its own (sinks decide where events go).
//   - Import the root package or any sibling package.
package audit
