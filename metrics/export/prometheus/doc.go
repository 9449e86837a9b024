// Package prometheus renders pantryclient metrics in Prometheus text
// exposition format.
//
// [NewPrometheusExporter] accepts a [pantryclient.Client] and exposes an
// [http.Handler] serving all counters and histograms. Counter names are
// prefixed pantryclient_*_total; the single histogram is
// pantryclient_guard_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the
//     Handler.
//   - Mutate client state.
package prometheus
