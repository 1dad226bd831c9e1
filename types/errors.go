package types

import "errors"

// Common errors
var (
	// ErrInvalidURI is returned when a source URI is malformed
	ErrInvalidURI = errors.New("invalid source URI")

	// ErrInvalidConfig is returned when the configuration document is
	// missing, unparsable, has the wrong shape, or references an unset
	// environment variable
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedBackend is returned when no driver is registered for a
	// backend type
	ErrUnsupportedBackend = errors.New("unsupported backend")

	// ErrNotConfigured is returned when a backend has no live connection in
	// the manager
	ErrNotConfigured = errors.New("backend not configured")

	// ErrNotInitialized is returned when the global manager is accessed
	// before being set
	ErrNotInitialized = errors.New("global connection manager not initialized")

	// ErrConnectionFailed is returned when a backend connection cannot be
	// established or is used before Connect
	ErrConnectionFailed = errors.New("connection failed")

	// ErrTableNotFound is returned when the requested table does not exist
	// in the backend
	ErrTableNotFound = errors.New("table not found")

	// ErrQueryFailed is returned when the backend rejects or aborts a query
	ErrQueryFailed = errors.New("query execution failed")

	// ErrInvalidFormat is returned when an unsupported output format is
	// requested
	ErrInvalidFormat = errors.New("invalid output format")
)
