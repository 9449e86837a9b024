// Package internal contains helpers that are intentionally private to
// pantryclient.
//
// # Sub-packages
//
//   - audit — async event dispatch (Dispatcher + Sink implementations)
//   - metrics — lock-free counters and latency histograms
//
// # What this package must NOT do
//
//   - Export types that appear in the public pantryclient API other than
//     through root-level aliases.
//   - Be imported by any package outside the pantryclient module.
package internal
