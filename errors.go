package pantryclient

import (
	"errors"

	"github.com/pantrylabs/pantryclient/session"
	"github.com/pantrylabs/pantryclient/transport"
)

var (
	// ErrUnauthorized is returned when the backend rejects the bearer token.
	// It matches the transport-level sentinel, so errors.Is works on errors
	// from either layer.
	ErrUnauthorized = transport.ErrUnauthorized
	// ErrForbidden is returned on 403 responses.
	ErrForbidden = transport.ErrForbidden
	// ErrNotFound is returned on 404 responses.
	ErrNotFound = transport.ErrNotFound
	// ErrStoreUnavailable is returned when the durable token store fails.
	ErrStoreUnavailable = session.ErrStoreUnavailable
	// ErrRouteUnknown is returned by the guard for route names outside the
	// registered table.
	ErrRouteUnknown = errors.New("route not registered")
	// ErrRouteExists is returned when a route name is registered twice.
	ErrRouteExists = errors.New("route already registered")
	// ErrRoutesFrozen is returned when registering after Freeze.
	ErrRoutesFrozen = errors.New("route table frozen")
	// ErrClientNotReady is returned when an operation runs before Bootstrap.
	ErrClientNotReady = errors.New("client not bootstrapped")
	// ErrBuilderUsed is returned when a Builder is built twice.
	ErrBuilderUsed = errors.New("builder already used")
)
