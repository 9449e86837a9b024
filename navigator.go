package pantryclient

import "sync"

// NopNavigator ignores all navigation. Useful when the embedding application
// applies guard decisions itself.
type NopNavigator struct{}

func (NopNavigator) Current() string { return "" }
func (NopNavigator) Go(string)       {}

// MemoryNavigator tracks the current route in memory and records every
// transition. Safe for concurrent use.
type MemoryNavigator struct {
	mu      sync.Mutex
	current string
	history []string
}

// NewMemoryNavigator starts at the given route.
func NewMemoryNavigator(start string) *MemoryNavigator {
	return &MemoryNavigator{current: start}
}

func (n *MemoryNavigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *MemoryNavigator) Go(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = route
	n.history = append(n.history, route)
}

// History returns a copy of all transitions since creation.
func (n *MemoryNavigator) History() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.history...)
}
