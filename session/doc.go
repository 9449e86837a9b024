// Package session holds the process-wide authentication session: the current
// bearer token and the identity resolved from it, mirrored into a durable
// [TokenStore] on every mutation.
//
// # Design
//
// Session is the single writer of the persisted token. SetToken is
// write-through: after it returns, the in-memory value and the durable copy
// are identical. Identity resolution is epoch-guarded — a user record fetched
// against an older token generation is discarded instead of overwriting a
// fresher session state.
//
// # Architecture boundaries
//
// This package owns session state and token persistence. It performs no HTTP
// I/O: validating a token against the backend and resolving the user is the
// caller's job (the client's guard and bootstrap flows).
//
// # What this package must NOT do
//
//   - Issue network requests or interpret HTTP status codes.
//   - Make routing decisions.
//   - Populate a user while no token is held.
package session
