package interfaces

import "errors"

// Errors returned by repository implementations.
var (
	ErrNotFound          = errors.New("record not found")
	ErrLockNotFound      = errors.New("resource lock not found")
	ErrLockAlreadyExists = errors.New("resource lock already exists")
	ErrLockConflict      = errors.New("resource lock version conflict")
)

// Errors returned by gateway implementations.
var (
	ErrGatewayNotConfigured = errors.New("gateway endpoint is not configured")
	ErrGatewayUnavailable   = errors.New("gateway unavailable")
)
