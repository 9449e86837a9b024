package session

// User is the identity record returned by the backend identity endpoint.
// It is only trustworthy while the token it was resolved from is still held.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	IsAdmin  bool   `json:"is_admin"`
}

// EventType classifies session-change notifications.
type EventType uint8

const (
	// EventTokenSet fires after a non-empty token was installed.
	EventTokenSet EventType = iota
	// EventTokenCleared fires after the token was removed.
	EventTokenCleared
	// EventUserResolved fires after an identity was attached to the session.
	EventUserResolved
	// EventHydrated fires after LoadFromStorage restored a persisted token.
	EventHydrated
)

// Event is delivered to observers registered via [Session.Subscribe].
type Event struct {
	Type  EventType
	Epoch uint64
}
