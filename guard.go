package pantryclient

import (
	"context"
	"time"

	"github.com/pantrylabs/pantryclient/internal/metrics"
)

// Action classifies a guard decision.
type Action int

const (
	// ActionAllow lets the navigation proceed to the requested route.
	ActionAllow Action = iota
	// ActionRedirectLogin steers the navigation to the login route.
	ActionRedirectLogin
	// ActionRedirectDashboard steers a non-admin away from an admin route.
	ActionRedirectDashboard
)

func (a Action) String() string {
	switch a {
	case ActionAllow:
		return "allow"
	case ActionRedirectLogin:
		return "redirect-login"
	case ActionRedirectDashboard:
		return "redirect-dashboard"
	default:
		return "unknown"
	}
}

// Decision is the guard's verdict on one navigation attempt. Target names
// the route the navigation should land on; on Allow it equals the requested
// route.
type Decision struct {
	Action Action
	Target string
}

// Authorize evaluates a navigation to the named route and returns an
// explicit decision. It never mutates the navigator; callers apply the
// decision themselves or use [Client.Navigate].
//
// The transition order is fixed: unknown routes fail, public routes pass
// without touching the session, unauthenticated navigations to protected
// routes bounce to login, and an unresolved identity is fetched exactly once
// before the admin gate is applied. A token rejected during that fetch has
// already been cleared by the transport interceptor; a transport failure
// leaves the token in place so the navigation can be retried.
func (c *Client) Authorize(ctx context.Context, routeName string) (Decision, error) {
	if !c.ready.Load() {
		return Decision{}, ErrClientNotReady
	}

	start := time.Now()
	decision, err := c.authorize(ctx, routeName)
	c.metrics.Observe(metrics.MetricGuardLatency, time.Since(start))

	if err == nil {
		switch decision.Action {
		case ActionAllow:
			c.metrics.Inc(metrics.MetricGuardAllow)
		case ActionRedirectLogin:
			c.metrics.Inc(metrics.MetricGuardRedirectLogin)
		case ActionRedirectDashboard:
			c.metrics.Inc(metrics.MetricGuardRedirectDashboard)
		}
	}
	c.auditGuard(ctx, routeName, decision, err)

	return decision, err
}

func (c *Client) authorize(ctx context.Context, routeName string) (Decision, error) {
	route, ok := c.routes.Lookup(routeName)
	if !ok {
		return Decision{}, ErrRouteUnknown
	}

	if !route.RequiresAuth {
		return Decision{Action: ActionAllow, Target: route.Name}, nil
	}

	if !c.session.IsAuthenticated() {
		return c.redirectLogin(route.Name), nil
	}

	user, ok := c.session.User()
	if !ok {
		var err error
		user, err = c.fetchIdentity(ctx)
		if err != nil {
			// 401 and transport failures both bounce to login. Only a
			// rejected token has been cleared; the session keeps the
			// token across outages.
			return c.redirectLogin(route.Name), nil
		}
	}

	if route.RequiresAdmin && !user.IsAdmin {
		return Decision{Action: ActionRedirectDashboard, Target: c.cfg.Routes.DashboardRoute}, nil
	}
	return Decision{Action: ActionAllow, Target: route.Name}, nil
}

// fetchIdentity resolves the user behind the current token. The epoch is
// captured before the request so a token change mid-flight invalidates the
// result instead of attaching a stale identity.
func (c *Client) fetchIdentity(ctx context.Context) (*User, error) {
	epoch := c.session.Epoch()

	user, err := c.api.Auth.Me(ctx)
	if err != nil {
		c.metrics.Inc(metrics.MetricIdentityFetchFailure)
		return nil, err
	}

	if !c.session.ResolveUser(epoch, user) {
		c.metrics.Inc(metrics.MetricIdentityFetchStale)
		return nil, ErrUnauthorized
	}
	c.metrics.Inc(metrics.MetricIdentityFetchSuccess)
	return user, nil
}

func (c *Client) redirectLogin(from string) Decision {
	if from == c.cfg.Routes.LoginRoute {
		return Decision{Action: ActionAllow, Target: from}
	}
	return Decision{Action: ActionRedirectLogin, Target: c.cfg.Routes.LoginRoute}
}

// Navigate runs Authorize and applies the decision to the navigator. It
// returns the decision so callers can still inspect it.
func (c *Client) Navigate(ctx context.Context, routeName string) (Decision, error) {
	decision, err := c.Authorize(ctx, routeName)
	if err != nil {
		return decision, err
	}
	if c.nav != nil && c.nav.Current() != decision.Target {
		c.nav.Go(decision.Target)
	}
	return decision, nil
}
