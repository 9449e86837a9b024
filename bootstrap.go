package pantryclient

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/pantrylabs/pantryclient/internal/metrics"
	"github.com/pantrylabs/pantryclient/session"
)

// Bootstrap runs the startup sequence: hydrate the token from durable
// storage, consume a dev-token override from the entry URL, prune a visibly
// expired token, and optionally prefetch the identity behind it. It returns
// the entry URL with the override parameter stripped, so it never leaks into
// history or logs.
//
// Bootstrap must run once before guarded navigation. The returned URL is
// always usable; a non-nil error reports a degraded start (durable store
// down, unparseable URL) that did not prevent it.
func (c *Client) Bootstrap(ctx context.Context, rawURL string) (string, error) {
	var errs []error

	if err := c.session.LoadFromStorage(ctx); err != nil {
		errs = append(errs, err)
	}

	cleanURL := rawURL
	override := false
	if rawURL != "" && c.cfg.Bootstrap.DevTokenParam != "" {
		cleaned, token, err := stripQueryParam(rawURL, c.cfg.Bootstrap.DevTokenParam)
		switch {
		case err != nil:
			errs = append(errs, err)
		case token != "":
			cleanURL = cleaned
			override = true
			if err := c.session.SetToken(ctx, token); err != nil {
				errs = append(errs, err)
			}
			c.metrics.Inc(metrics.MetricBootstrapOverride)
			c.auditAuth(ctx, AuditEventTokenOverride, "", nil)
		}
	}

	if c.cfg.Bootstrap.PruneExpiredTokens {
		if token, ok := c.session.Token(); ok && session.TokenExpired(token, time.Now()) {
			c.session.ClearToken(ctx)
			c.metrics.Inc(metrics.MetricExpiredTokenPruned)
		}
	}

	if c.cfg.Bootstrap.PrefetchIdentity && c.session.IsAuthenticated() {
		if _, ok := c.session.User(); !ok {
			// A rejected token is cleared by the interceptor; a transport
			// failure leaves it for the first guarded navigation to retry.
			_, _ = c.fetchIdentity(ctx)
		}
	}

	c.ready.Store(true)

	err := errors.Join(errs...)
	if c.audit != nil {
		event := AuditEvent{
			Timestamp: time.Now().UTC(),
			EventType: AuditEventBootstrap,
			Success:   err == nil,
			Metadata: map[string]string{
				"authenticated": boolString(c.session.IsAuthenticated()),
				"override":      boolString(override),
			},
		}
		if err != nil {
			event.Error = err.Error()
		}
		c.audit.Emit(ctx, event)
	}
	return cleanURL, err
}

// stripQueryParam removes param from rawURL and returns the cleaned URL plus
// the removed value, if any.
func stripQueryParam(rawURL, param string) (string, string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL, "", err
	}
	query := parsed.Query()
	value := query.Get(param)
	if value == "" {
		return rawURL, "", nil
	}
	query.Del(param)
	parsed.RawQuery = query.Encode()
	return parsed.String(), value, nil
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
