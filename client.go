package pantryclient

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pantrylabs/pantryclient/api"
	"github.com/pantrylabs/pantryclient/i18n"
	internalaudit "github.com/pantrylabs/pantryclient/internal/audit"
	internalmetrics "github.com/pantrylabs/pantryclient/internal/metrics"
	"github.com/pantrylabs/pantryclient/session"
	"github.com/pantrylabs/pantryclient/transport"
)

// Client is the composed application client: session, transport, remote API
// facade, route guard, and translation bundle behind one handle. Build it
// with [Builder], then call [Client.Bootstrap] once before guarded
// navigation.
type Client struct {
	cfg     Config
	session *session.Session
	channel *transport.Client
	api     *api.Client
	bundle  *i18n.Bundle
	routes  *RouteRegistry
	nav     Navigator
	audit   *internalaudit.Dispatcher
	metrics *internalmetrics.Metrics
	ready   atomic.Bool
}

// Session exposes the session state.
func (c *Client) Session() *session.Session { return c.session }

// API exposes the remote endpoint groups.
func (c *Client) API() *api.Client { return c.api }

// Locale exposes the translation bundle.
func (c *Client) Locale() *i18n.Bundle { return c.bundle }

// Routes exposes the frozen route table.
func (c *Client) Routes() *RouteRegistry { return c.routes }

// Login exchanges credentials for a token and installs it in the session.
// The resolved identity is fetched eagerly so the first guarded navigation
// needs no extra round trip.
func (c *Client) Login(ctx context.Context, username, password string) error {
	tok, err := c.api.Auth.Login(ctx, api.Credentials{Username: username, Password: password})
	if err != nil {
		c.auditAuth(ctx, AuditEventLogin, username, err)
		return err
	}
	if err := c.session.SetToken(ctx, tok.AccessToken); err != nil {
		c.auditAuth(ctx, AuditEventLogin, username, err)
		return err
	}

	epoch := c.session.Epoch()
	if user, err := c.api.Auth.Me(ctx); err == nil {
		if c.session.ResolveUser(epoch, user) {
			c.metrics.Inc(internalmetrics.MetricIdentityFetchSuccess)
		} else {
			c.metrics.Inc(internalmetrics.MetricIdentityFetchStale)
		}
	}

	c.auditAuth(ctx, AuditEventLogin, username, nil)
	return nil
}

// Register creates an account and logs it in with the returned token.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	tok, err := c.api.Auth.Register(ctx, api.Credentials{Username: username, Email: email, Password: password})
	if err != nil {
		c.auditAuth(ctx, AuditEventRegister, username, err)
		return err
	}
	if err := c.session.SetToken(ctx, tok.AccessToken); err != nil {
		c.auditAuth(ctx, AuditEventRegister, username, err)
		return err
	}
	c.auditAuth(ctx, AuditEventRegister, username, nil)
	return nil
}

// Logout clears the token and the resolved identity and steers to login.
func (c *Client) Logout(ctx context.Context) error {
	var username string
	if user, ok := c.session.User(); ok {
		username = user.Username
	}

	err := c.session.Logout(ctx)
	c.auditAuth(ctx, AuditEventLogout, username, err)

	if c.nav != nil && c.nav.Current() != c.cfg.Routes.LoginRoute {
		c.nav.Go(c.cfg.Routes.LoginRoute)
	}
	return err
}

// MetricsSnapshot returns a point-in-time copy of all client metrics.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	return c.metrics.Snapshot()
}

// AuditDropped returns the number of audit events dropped under
// backpressure.
func (c *Client) AuditDropped() uint64 {
	return c.audit.Dropped()
}

// Close flushes and stops the audit dispatcher. The client must not be used
// afterwards.
func (c *Client) Close() {
	c.audit.Close()
}

func (c *Client) auditGuard(ctx context.Context, routeName string, decision Decision, err error) {
	if c.audit == nil {
		return
	}
	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: AuditEventGuardDecision,
		Route:     routeName,
		Success:   err == nil,
	}
	if err != nil {
		event.Error = err.Error()
	} else {
		event.Metadata = map[string]string{
			"action": decision.Action.String(),
			"target": decision.Target,
		}
	}
	if user, ok := c.session.User(); ok {
		event.Username = user.Username
	}
	c.audit.Emit(ctx, event)
}

func (c *Client) auditAuth(ctx context.Context, eventType, username string, err error) {
	if c.audit == nil {
		return
	}
	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Username:  username,
		Success:   err == nil,
	}
	if err != nil {
		event.Error = err.Error()
	}
	c.audit.Emit(ctx, event)
}

// transportObserver feeds transport events into metrics and audit without
// the transport package knowing either exists.
type transportObserver struct {
	client *Client
}

func (o transportObserver) RequestSent(_ string, authorized bool) {
	if authorized {
		o.client.metrics.Inc(internalmetrics.MetricRequestAuthorized)
	} else {
		o.client.metrics.Inc(internalmetrics.MetricRequestAnonymous)
	}
}

func (o transportObserver) UnauthorizedObserved(requestID, path string) {
	o.client.metrics.Inc(internalmetrics.MetricUnauthorizedResponse)
	if o.client.audit != nil {
		o.client.audit.Emit(context.Background(), AuditEvent{
			Timestamp: time.Now().UTC(),
			EventType: AuditEventUnauthorized,
			RequestID: requestID,
			Success:   false,
			Metadata:  map[string]string{"path": path},
		})
	}
}

var _ transport.Observer = transportObserver{}
