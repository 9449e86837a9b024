// Package pantryclient is the Go client for the household recipe and
// shopping-list service: a persistent bearer-token session, an HTTP channel
// that attaches credentials and centralizes 401 handling, typed API groups
// for ingredients, shopping lists, recipes, and news, a route guard that
// gates navigation by authentication and admin role, and localized UI
// strings.
//
// Clients are assembled through [Builder.Build] and are safe for concurrent
// use after construction.
//
// # Architecture boundaries
//
// pantryclient is the public surface. It exposes [Client], [Builder],
// [Config], route and decision types, sentinel errors, and metric IDs. The
// subpackages carry the concerns: session state and token persistence in
// session, the intercepting HTTP channel in transport, endpoint groups in
// api, string tables in i18n. Audit dispatch and metric storage live under
// internal/ and surface here only as type aliases.
//
// # What this package must NOT do
//
//   - Expose token stores' wire formats or transport internals in its
//     public API.
//   - Mutate any browsing context or process environment: every routing
//     outcome is an explicit [Decision] handed to a [Navigator].
//   - Trust token contents: claims are only ever decoded to skip a fetch
//     that is guaranteed to fail, never for authorization.
package pantryclient
