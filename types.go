package pantryclient

import (
	internalaudit "github.com/pantrylabs/pantryclient/internal/audit"
	internalmetrics "github.com/pantrylabs/pantryclient/internal/metrics"
	"github.com/pantrylabs/pantryclient/session"
	"github.com/pantrylabs/pantryclient/transport"
)

// User is the identity resolved from the bearer token.
type User = session.User

// TokenStore is the durable storage behind the session.
type TokenStore = session.TokenStore

// SessionEvent is emitted to session observers on state changes.
type SessionEvent = session.Event

// StatusError carries the HTTP failure details of a rejected request.
type StatusError = transport.StatusError

// Navigator receives the redirect side effects of the guard and the 401
// interceptor.
type Navigator = transport.Navigator

// AuditEvent is the canonical audit record emitted by the client.
type AuditEvent = internalaudit.Event

// AuditSink receives emitted audit events.
type AuditSink = internalaudit.Sink

// MetricsSnapshot is a point-in-time copy of all client metrics.
type MetricsSnapshot = internalmetrics.Snapshot
