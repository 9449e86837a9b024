package session

import (
	"context"
	"errors"
	"sync"
)

// ErrStoreUnavailable wraps durable-store failures surfaced by SetToken and
// LoadFromStorage.
var ErrStoreUnavailable = errors.New("token store unavailable")

// Session is the process-wide record of the current bearer token and the
// identity resolved from it. Safe for concurrent use.
type Session struct {
	mu        sync.RWMutex
	token     string
	user      *User
	epoch     uint64
	hydrated  bool
	store     TokenStore
	storeMu   sync.Mutex
	observers []func(Event)
}

// New creates a Session backed by the given store. A nil store falls back to
// an in-memory store, which makes the session purely ephemeral.
func New(store TokenStore) *Session {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Session{store: store}
}

// Token returns the current bearer token. Pure read, no side effects.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// IsAuthenticated reports whether a token is currently held. Computed on
// demand, never cached.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// User returns the resolved identity, if any.
func (s *Session) User() (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.user != nil
}

// Epoch returns the current token generation. Callers that resolve an
// identity asynchronously capture the epoch first and pass it back to
// [Session.ResolveUser] so a stale result cannot overwrite a fresher state.
func (s *Session) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// SetToken installs token in memory and writes it through to the durable
// store. An empty token removes the value from both. Either way the user is
// invalidated: identity must be re-resolved against the new token.
//
// The in-memory state is updated even when the store write fails; the
// returned error then wraps [ErrStoreUnavailable]. Store commits happen in
// epoch order: a call superseded by a newer mutation skips its own commit,
// so the store always converges to the latest token.
func (s *Session) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.user = nil
	s.epoch++
	epoch := s.epoch
	s.mu.Unlock()

	storeErr := s.commit(ctx, token, epoch)

	if token == "" {
		s.notify(Event{Type: EventTokenCleared, Epoch: epoch})
	} else {
		s.notify(Event{Type: EventTokenSet, Epoch: epoch})
	}

	if storeErr != nil {
		return errors.Join(ErrStoreUnavailable, storeErr)
	}
	return nil
}

// commit writes token through to the durable store. Commits are serialized
// under storeMu and re-check the epoch, so a slow store call from an older
// mutation can never land after a newer one. A stale commit is skipped: the
// newer mutation's own commit is the state the store settles on.
func (s *Session) commit(ctx context.Context, token string, epoch uint64) error {
	s.storeMu.Lock()
	defer s.storeMu.Unlock()

	s.mu.RLock()
	current := s.epoch
	s.mu.RUnlock()
	if current != epoch {
		return nil
	}

	if token == "" {
		return s.store.Delete(ctx)
	}
	return s.store.Save(ctx, token)
}

// ClearToken removes the token best-effort: store failures are swallowed.
// Intended for interceptor paths that must never fail.
func (s *Session) ClearToken(ctx context.Context) {
	_ = s.SetToken(ctx, "")
}

// LoadFromStorage hydrates the in-memory token from the durable store.
// It runs the actual read at most once; repeated calls are no-ops.
func (s *Session) LoadFromStorage(ctx context.Context) error {
	s.mu.Lock()
	if s.hydrated {
		s.mu.Unlock()
		return nil
	}
	s.hydrated = true
	s.mu.Unlock()

	token, err := s.store.Load(ctx)
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if token == "" {
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.epoch++
	epoch := s.epoch
	s.mu.Unlock()

	s.notify(Event{Type: EventHydrated, Epoch: epoch})
	return nil
}

// ResolveUser attaches an identity resolved against the token generation
// epoch. It reports false, and stores nothing, when the epoch is no longer
// current or the token has been cleared in the meantime.
func (s *Session) ResolveUser(epoch uint64, user *User) bool {
	if user == nil {
		return false
	}

	s.mu.Lock()
	if s.epoch != epoch || s.token == "" {
		s.mu.Unlock()
		return false
	}
	s.user = user
	s.mu.Unlock()

	s.notify(Event{Type: EventUserResolved, Epoch: epoch})
	return true
}

// Logout clears the token and the resolved identity.
func (s *Session) Logout(ctx context.Context) error {
	return s.SetToken(ctx, "")
}

// Subscribe registers fn for session-change events. Observers run
// synchronously on the mutating goroutine and must not block.
func (s *Session) Subscribe(fn func(Event)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *Session) notify(ev Event) {
	s.mu.RLock()
	observers := s.observers
	s.mu.RUnlock()

	for _, fn := range observers {
		fn(ev)
	}
}
