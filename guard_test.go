package pantryclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/pantrylabs/pantryclient/session"
)

// testBackend serves /auth/me with a fixed identity and counts the hits.
type testBackend struct {
	user   session.User
	reject bool
	meHits atomic.Int64
}

func (b *testBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/me" {
			http.NotFound(w, r)
			return
		}
		b.meHits.Add(1)
		if b.reject || r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(b.user)
	}
}

func newTestClient(t *testing.T, backend *testBackend) (*Client, *MemoryNavigator) {
	t.Helper()

	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	nav := NewMemoryNavigator("landing")
	client, err := New().
		WithBaseURL(srv.URL + "/api").
		WithTokenStore(session.NewMemoryStore()).
		WithNavigator(nav).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(client.Close)

	if _, err := client.Bootstrap(context.Background(), ""); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	return client, nav
}

func TestAuthorizeBeforeBootstrap(t *testing.T) {
	client, err := New().
		WithBaseURL("https://pantry.example/api").
		WithTokenStore(session.NewMemoryStore()).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer client.Close()

	if _, err := client.Authorize(context.Background(), "dashboard"); !errors.Is(err, ErrClientNotReady) {
		t.Fatalf("expected ErrClientNotReady, got %v", err)
	}
}

func TestAuthorizeUnknownRoute(t *testing.T) {
	client, _ := newTestClient(t, &testBackend{})

	if _, err := client.Authorize(context.Background(), "nope"); !errors.Is(err, ErrRouteUnknown) {
		t.Fatalf("expected ErrRouteUnknown, got %v", err)
	}
}

func TestPublicRouteAllowedWithoutSession(t *testing.T) {
	backend := &testBackend{}
	client, _ := newTestClient(t, backend)

	for _, route := range []string{"landing", "login", "register", "news", "privacy", "imprint"} {
		decision, err := client.Authorize(context.Background(), route)
		if err != nil {
			t.Fatalf("Authorize(%s): %v", route, err)
		}
		if decision.Action != ActionAllow || decision.Target != route {
			t.Fatalf("Authorize(%s) = %+v, want allow", route, decision)
		}
	}
	if backend.meHits.Load() != 0 {
		t.Fatalf("public routes must not touch the backend, got %d hits", backend.meHits.Load())
	}
}

func TestProtectedRouteWithoutTokenRedirectsLogin(t *testing.T) {
	client, _ := newTestClient(t, &testBackend{})

	decision, err := client.Authorize(context.Background(), "dashboard")
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if decision.Action != ActionRedirectLogin || decision.Target != "login" {
		t.Fatalf("got %+v, want redirect to login", decision)
	}
}

func TestIdentityFetchedOnceThenCached(t *testing.T) {
	backend := &testBackend{user: session.User{ID: 1, Username: "resi"}}
	client, _ := newTestClient(t, backend)
	ctx := context.Background()

	if err := client.Session().SetToken(ctx, "tok-valid"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	for i := 0; i < 3; i++ {
		decision, err := client.Authorize(ctx, "dashboard")
		if err != nil {
			t.Fatalf("Authorize #%d: %v", i, err)
		}
		if decision.Action != ActionAllow {
			t.Fatalf("Authorize #%d = %+v, want allow", i, decision)
		}
	}
	if hits := backend.meHits.Load(); hits != 1 {
		t.Fatalf("identity must be fetched once, got %d hits", hits)
	}
}

func TestAdminGateRedirectsNonAdminToDashboard(t *testing.T) {
	backend := &testBackend{user: session.User{ID: 2, Username: "resi", IsAdmin: false}}
	client, _ := newTestClient(t, backend)
	ctx := context.Background()

	if err := client.Session().SetToken(ctx, "tok-valid"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	decision, err := client.Authorize(ctx, "admin")
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if decision.Action != ActionRedirectDashboard || decision.Target != "dashboard" {
		t.Fatalf("got %+v, want redirect to dashboard", decision)
	}
}

func TestAdminGatePassesAdmin(t *testing.T) {
	backend := &testBackend{user: session.User{ID: 3, Username: "chef", IsAdmin: true}}
	client, _ := newTestClient(t, backend)
	ctx := context.Background()

	if err := client.Session().SetToken(ctx, "tok-valid"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	decision, err := client.Authorize(ctx, "admin")
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if decision.Action != ActionAllow || decision.Target != "admin" {
		t.Fatalf("got %+v, want allow", decision)
	}
}

func TestRejectedTokenClearedAndRedirected(t *testing.T) {
	backend := &testBackend{reject: true}
	client, _ := newTestClient(t, backend)
	ctx := context.Background()

	if err := client.Session().SetToken(ctx, "tok-stale"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	decision, err := client.Authorize(ctx, "dashboard")
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if decision.Action != ActionRedirectLogin {
		t.Fatalf("got %+v, want redirect to login", decision)
	}
	if client.Session().IsAuthenticated() {
		t.Fatal("rejected token must be cleared")
	}
}

func TestTransportFailureKeepsToken(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	nav := NewMemoryNavigator("landing")
	client, err := New().
		WithBaseURL(srv.URL + "/api").
		WithTokenStore(session.NewMemoryStore()).
		WithNavigator(nav).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	if _, err := client.Bootstrap(ctx, ""); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if err := client.Session().SetToken(ctx, "tok-valid"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	// Kill the backend so the identity fetch fails at the transport level.
	srv.Close()

	decision, err := client.Authorize(ctx, "dashboard")
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if decision.Action != ActionRedirectLogin {
		t.Fatalf("got %+v, want redirect to login", decision)
	}
	if !client.Session().IsAuthenticated() {
		t.Fatal("transport failure must not clear the token")
	}
}

func TestNavigateAppliesDecision(t *testing.T) {
	client, nav := newTestClient(t, &testBackend{})

	decision, err := client.Navigate(context.Background(), "dashboard")
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if decision.Action != ActionRedirectLogin {
		t.Fatalf("got %+v, want redirect to login", decision)
	}
	if nav.Current() != "login" {
		t.Fatalf("navigator at %q, want login", nav.Current())
	}
}

func TestGuardMetrics(t *testing.T) {
	backend := &testBackend{user: session.User{ID: 1, Username: "resi"}}
	client, _ := newTestClient(t, backend)
	ctx := context.Background()

	if _, err := client.Authorize(ctx, "landing"); err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if _, err := client.Authorize(ctx, "dashboard"); err != nil {
		t.Fatalf("Authorize: %v", err)
	}

	snap := client.MetricsSnapshot()
	if snap.Counters[MetricGuardAllow] != 1 {
		t.Fatalf("guard allow = %d, want 1", snap.Counters[MetricGuardAllow])
	}
	if snap.Counters[MetricGuardRedirectLogin] != 1 {
		t.Fatalf("guard redirect login = %d, want 1", snap.Counters[MetricGuardRedirectLogin])
	}
}
