package pantryclient

import (
	internalmetrics "github.com/pantrylabs/pantryclient/internal/metrics"
)

// MetricID identifies a specific counter or histogram.
type MetricID = internalmetrics.MetricID

// Metric IDs re-exported for exporters.
const (
	MetricRequestAuthorized    = internalmetrics.MetricRequestAuthorized
	MetricRequestAnonymous     = internalmetrics.MetricRequestAnonymous
	MetricUnauthorizedResponse = internalmetrics.MetricUnauthorizedResponse

	MetricGuardAllow             = internalmetrics.MetricGuardAllow
	MetricGuardRedirectLogin     = internalmetrics.MetricGuardRedirectLogin
	MetricGuardRedirectDashboard = internalmetrics.MetricGuardRedirectDashboard

	MetricIdentityFetchSuccess = internalmetrics.MetricIdentityFetchSuccess
	MetricIdentityFetchFailure = internalmetrics.MetricIdentityFetchFailure
	MetricIdentityFetchStale   = internalmetrics.MetricIdentityFetchStale

	MetricTokenSet           = internalmetrics.MetricTokenSet
	MetricTokenCleared       = internalmetrics.MetricTokenCleared
	MetricSessionHydrated    = internalmetrics.MetricSessionHydrated
	MetricBootstrapOverride  = internalmetrics.MetricBootstrapOverride
	MetricExpiredTokenPruned = internalmetrics.MetricExpiredTokenPruned

	MetricGuardLatency = internalmetrics.MetricGuardLatency
)
