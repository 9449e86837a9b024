// Package api groups the backend endpoints by resource: auth, ingredients,
// shopping lists, recipes, and news.
//
// Each group is a thin, stateless wrapper that picks verb, path, and query
// parameters and decodes the typed response. Language-sensitive endpoints
// carry the current UI locale as a language query value; a per-call override
// via [i18n.WithLocale] wins over the bundle's active locale.
//
// # Architecture boundaries
//
// Every call goes through transport.Client and is therefore subject to its
// bearer-attach and 401 policy. This package adds no decision logic: it
// never inspects the session and never reacts to authentication failures
// beyond propagating them.
package api
