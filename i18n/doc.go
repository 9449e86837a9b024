// Package i18n holds the localized UI string tables and the active locale.
//
// Seven locales ship embedded: de, en, fr, ja, tr, fa, nds. Lookup falls
// back per key to the fallback locale (de). The active locale seeds from a
// persisted preference when a store is attached, else from the process
// environment language, else from the configured default.
//
// # What this package must NOT do
//
//   - Reach the network: tables are embedded at build time.
//   - Know about routes, sessions, or HTTP.
package i18n
