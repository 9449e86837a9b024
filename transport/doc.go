// Package transport is the single outbound channel to the backend API.
//
// Every request passes the same two interceptions: on the way out, the
// current bearer token (when one is held) and a fresh X-Request-ID are
// attached; on the way back, a 401 clears the session best-effort and steers
// the navigator to the login route — while the original error still reaches
// the caller. Callers therefore never special-case authentication failure
// themselves.
//
// # Architecture boundaries
//
// This package owns HTTP mechanics: URL assembly, JSON codec, status
// mapping, interception. It does not decide what a token means — that is the
// session's and guard's business — and it never blocks a response on any
// side effect of its own.
//
// # What this package must NOT do
//
//   - Swallow errors: interceptor side effects run, then the failure
//     propagates unchanged in meaning.
//   - Retry requests or queue them offline.
//   - Read or write durable storage.
package transport
