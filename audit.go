package pantryclient

import (
	"io"

	internalaudit "github.com/pantrylabs/pantryclient/internal/audit"
)

// Audit event types emitted by the client.
const (
	// AuditEventGuardDecision records a guard verdict on a navigation.
	AuditEventGuardDecision = "guard_decision"
	// AuditEventLogin records a login attempt.
	AuditEventLogin = "login"
	// AuditEventRegister records a registration attempt.
	AuditEventRegister = "register"
	// AuditEventLogout records a logout.
	AuditEventLogout = "logout"
	// AuditEventBootstrap records the startup sequence.
	AuditEventBootstrap = "bootstrap"
	// AuditEventUnauthorized records a 401 observed by the interceptor.
	AuditEventUnauthorized = "unauthorized_response"
	// AuditEventTokenOverride records a dev-token consumed from the URL.
	AuditEventTokenOverride = "token_override"
)

// NewNoOpAuditSink returns a sink that drops every event.
func NewNoOpAuditSink() AuditSink { return internalaudit.NoOpSink{} }

// NewChannelAuditSink returns a sink backed by a buffered channel, plus the
// receive side.
func NewChannelAuditSink(buffer int) (AuditSink, <-chan AuditEvent) {
	sink := internalaudit.NewChannelSink(buffer)
	return sink, sink.Events()
}

// NewJSONAuditSink returns a sink that writes one JSON object per line.
func NewJSONAuditSink(w io.Writer) AuditSink {
	return internalaudit.NewJSONWriterSink(w)
}
