package internaldefs

import (
	pantryclient "github.com/pantrylabs/pantryclient"
)

// CounterDef names one exported counter.
type CounterDef struct {
	ID   pantryclient.MetricID
	Name string
	Help string
}

// HistogramDef names one exported histogram.
type HistogramDef struct {
	ID   pantryclient.MetricID
	Name string
	Help string
}

// CounterDefs maps every counter metric to its wire name. Exporters iterate
// this slice so both render the same set in the same order.
var CounterDefs = []CounterDef{
	{ID: pantryclient.MetricRequestAuthorized, Name: "pantryclient_request_authorized_total", Help: "Outbound requests sent with a bearer token."},
	{ID: pantryclient.MetricRequestAnonymous, Name: "pantryclient_request_anonymous_total", Help: "Outbound requests sent without a token."},
	{ID: pantryclient.MetricUnauthorizedResponse, Name: "pantryclient_unauthorized_response_total", Help: "401 responses observed by the interceptor."},
	{ID: pantryclient.MetricGuardAllow, Name: "pantryclient_guard_allow_total", Help: "Navigations the guard let through."},
	{ID: pantryclient.MetricGuardRedirectLogin, Name: "pantryclient_guard_redirect_login_total", Help: "Navigations redirected to the login route."},
	{ID: pantryclient.MetricGuardRedirectDashboard, Name: "pantryclient_guard_redirect_dashboard_total", Help: "Admin-gate redirects to the dashboard."},
	{ID: pantryclient.MetricIdentityFetchSuccess, Name: "pantryclient_identity_fetch_success_total", Help: "Identity fetches that resolved a user."},
	{ID: pantryclient.MetricIdentityFetchFailure, Name: "pantryclient_identity_fetch_failure_total", Help: "Identity fetches rejected or failed."},
	{ID: pantryclient.MetricIdentityFetchStale, Name: "pantryclient_identity_fetch_stale_total", Help: "Identity results discarded by the epoch guard."},
	{ID: pantryclient.MetricTokenSet, Name: "pantryclient_token_set_total", Help: "Token installations."},
	{ID: pantryclient.MetricTokenCleared, Name: "pantryclient_token_cleared_total", Help: "Token removals."},
	{ID: pantryclient.MetricSessionHydrated, Name: "pantryclient_session_hydrated_total", Help: "Bootstrap hydrations from durable storage."},
	{ID: pantryclient.MetricBootstrapOverride, Name: "pantryclient_bootstrap_override_total", Help: "Dev-token URL overrides consumed at bootstrap."},
	{ID: pantryclient.MetricExpiredTokenPruned, Name: "pantryclient_expired_token_pruned_total", Help: "Visibly expired tokens cleared before any request."},
}

// HistogramDefs maps every histogram metric to its wire name.
var HistogramDefs = []HistogramDef{
	{ID: pantryclient.MetricGuardLatency, Name: "pantryclient_guard_latency_seconds", Help: "Guard evaluation latency histogram."},
}

// HistogramBounds are the bucket upper bounds in seconds, +Inf last.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is the bound list in identifier-safe form.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates a raw snapshot slice to the fixed
// bucket count.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts to the cumulative form both
// exposition formats require.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
