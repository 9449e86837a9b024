package pantryclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pantrylabs/pantryclient/session"
)

func authBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Password != "geheim" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Incorrect username or password"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token": "tok-" + creds.Username,
			"token_type":   "bearer",
		})
	})
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-resi" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(session.User{ID: 1, Username: "resi"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginInstallsTokenAndIdentity(t *testing.T) {
	srv := authBackend(t)
	nav := NewMemoryNavigator("login")
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

	if err := client.Login(ctx, "resi", "geheim"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	token, _ := client.Session().Token()
	if token != "tok-resi" {
		t.Fatalf("token = %q, want tok-resi", token)
	}
	user, ok := client.Session().User()
	if !ok || user.Username != "resi" {
		t.Fatalf("identity not resolved eagerly: %+v ok=%v", user, ok)
	}

	// The identity is already cached, so the guard needs no round trip.
	decision, err := client.Authorize(ctx, "dashboard")
	if err != nil || decision.Action != ActionAllow {
		t.Fatalf("Authorize = %+v err=%v, want allow", decision, err)
	}
}

func TestLoginRejectionSurfacesDetail(t *testing.T) {
	srv := authBackend(t)
	client, err := New().
		WithBaseURL(srv.URL + "/api").
		WithTokenStore(session.NewMemoryStore()).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	if _, err := client.Bootstrap(ctx, ""); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	err = client.Login(ctx, "resi", "falsch")
	if err == nil {
		t.Fatal("expected login failure")
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Detail != "Incorrect username or password" {
		t.Fatalf("expected backend detail on the error, got %v", err)
	}
	if client.Session().IsAuthenticated() {
		t.Fatal("failed login must not install a token")
	}
}

func TestLogoutClearsSessionAndRedirects(t *testing.T) {
	srv := authBackend(t)
	nav := NewMemoryNavigator("dashboard")
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
	if err := client.Login(ctx, "resi", "geheim"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := client.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if client.Session().IsAuthenticated() {
		t.Fatal("logout must clear the token")
	}
	if _, ok := client.Session().User(); ok {
		t.Fatal("logout must clear the identity")
	}
	if nav.Current() != "login" {
		t.Fatalf("navigator at %q, want login", nav.Current())
	}
}

func TestAuditEventsFlow(t *testing.T) {
	srv := authBackend(t)
	sink, events := NewChannelAuditSink(16)
	client, err := New().
		WithBaseURL(srv.URL + "/api").
		WithTokenStore(session.NewMemoryStore()).
		WithAuditSink(sink).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	if _, err := client.Bootstrap(ctx, ""); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if err := client.Login(ctx, "resi", "geheim"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := client.Authorize(ctx, "dashboard"); err != nil {
		t.Fatalf("Authorize: %v", err)
	}

	want := map[string]bool{
		AuditEventBootstrap:     false,
		AuditEventLogin:         false,
		AuditEventGuardDecision: false,
	}
	deadline := time.After(2 * time.Second)
	for {
		done := true
		for _, seen := range want {
			if !seen {
				done = false
			}
		}
		if done {
			return
		}
		select {
		case ev := <-events:
			if _, relevant := want[ev.EventType]; relevant {
				if !ev.Success {
					t.Fatalf("event %s reported failure: %+v", ev.EventType, ev)
				}
				want[ev.EventType] = true
			}
		case <-deadline:
			t.Fatalf("missing audit events: %+v", want)
		}
	}
}
