package pantryclient

import (
	"errors"
	"sort"
	"sync"
)

// Route declares one navigable view and its access requirements.
// RequiresAdmin implies RequiresAuth.
type Route struct {
	Name          string
	Path          string
	RequiresAuth  bool
	RequiresAdmin bool
}

// RouteRegistry maps route names to their declarations. Registration happens
// during Build; the registry is frozen before the guard reads it.
type RouteRegistry struct {
	mu     sync.RWMutex
	routes map[string]Route
	frozen bool
}

// NewRouteRegistry creates an empty registry.
func NewRouteRegistry() *RouteRegistry {
	return &RouteRegistry{routes: make(map[string]Route)}
}

// Register adds a route. Must be called before [RouteRegistry.Freeze].
func (r *RouteRegistry) Register(route Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrRoutesFrozen
	}
	if route.Name == "" {
		return errors.New("route name cannot be empty")
	}
	if _, exists := r.routes[route.Name]; exists {
		return ErrRouteExists
	}
	if route.RequiresAdmin {
		route.RequiresAuth = true
	}
	r.routes[route.Name] = route
	return nil
}

// Lookup returns the declaration for name, or false if not registered.
func (r *RouteRegistry) Lookup(name string) (Route, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	route, ok := r.routes[name]
	return route, ok
}

// Freeze prevents further registrations. The guard only reads from a frozen
// registry.
func (r *RouteRegistry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Count returns the number of registered routes.
func (r *RouteRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.routes)
}

// Names returns the registered route names in sorted order.
func (r *RouteRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRoutes returns the full route table of the application: the public
// surface (landing, login, register, news, legal pages), the authenticated
// household views, and the admin area.
func DefaultRoutes() []Route {
	return []Route{
		{Name: "landing", Path: "/"},
		{Name: "login", Path: "/login"},
		{Name: "register", Path: "/register"},
		{Name: "news", Path: "/news"},
		{Name: "news-detail", Path: "/news/:id"},
		{Name: "privacy", Path: "/privacy"},
		{Name: "imprint", Path: "/imprint"},
		{Name: "terms", Path: "/terms"},
		{Name: "agb", Path: "/agb"},

		{Name: "dashboard", Path: "/dashboard", RequiresAuth: true},
		{Name: "ingredients", Path: "/ingredients", RequiresAuth: true},
		{Name: "shopping-lists", Path: "/shopping-lists", RequiresAuth: true},
		{Name: "recipes", Path: "/recipes", RequiresAuth: true},
		{Name: "recipe-detail", Path: "/recipes/:id", RequiresAuth: true},
		{Name: "settings", Path: "/settings", RequiresAuth: true},

		{Name: "admin", Path: "/admin", RequiresAdmin: true},
		{Name: "admin-news", Path: "/admin/news", RequiresAdmin: true},
	}
}
