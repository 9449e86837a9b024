package pantryclient

import (
	"errors"
	"testing"
)

func TestRouteRegistryRegisterAndLookup(t *testing.T) {
	reg := NewRouteRegistry()
	if err := reg.Register(Route{Name: "dashboard", Path: "/dashboard", RequiresAuth: true}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	route, ok := reg.Lookup("dashboard")
	if !ok || !route.RequiresAuth {
		t.Fatalf("unexpected lookup result: %+v ok=%v", route, ok)
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Fatal("expected miss for unregistered route")
	}
}

func TestRouteRegistryRejectsDuplicates(t *testing.T) {
	reg := NewRouteRegistry()
	if err := reg.Register(Route{Name: "login", Path: "/login"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register(Route{Name: "login", Path: "/login2"}); !errors.Is(err, ErrRouteExists) {
		t.Fatalf("expected ErrRouteExists, got %v", err)
	}
}

func TestRouteRegistryFrozenRejectsRegister(t *testing.T) {
	reg := NewRouteRegistry()
	reg.Freeze()
	if err := reg.Register(Route{Name: "late", Path: "/late"}); !errors.Is(err, ErrRoutesFrozen) {
		t.Fatalf("expected ErrRoutesFrozen, got %v", err)
	}
}

func TestAdminImpliesAuth(t *testing.T) {
	reg := NewRouteRegistry()
	if err := reg.Register(Route{Name: "admin", Path: "/admin", RequiresAdmin: true}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	route, _ := reg.Lookup("admin")
	if !route.RequiresAuth {
		t.Fatal("RequiresAdmin must imply RequiresAuth")
	}
}

func TestDefaultRoutesCoverSpecialRoutes(t *testing.T) {
	reg := NewRouteRegistry()
	for _, route := range DefaultRoutes() {
		if err := reg.Register(route); err != nil {
			t.Fatalf("Register %s: %v", route.Name, err)
		}
	}
	reg.Freeze()

	login, ok := reg.Lookup("login")
	if !ok || login.RequiresAuth {
		t.Fatalf("login must be registered and public, got %+v ok=%v", login, ok)
	}
	dash, ok := reg.Lookup("dashboard")
	if !ok || !dash.RequiresAuth || dash.RequiresAdmin {
		t.Fatalf("dashboard must require auth but not admin, got %+v ok=%v", dash, ok)
	}
	admin, ok := reg.Lookup("admin")
	if !ok || !admin.RequiresAdmin {
		t.Fatalf("admin must require admin, got %+v ok=%v", admin, ok)
	}
}
