package core

import "errors"

// Common errors.
var (
	ErrNotFound           = errors.New("document not found")
	ErrAlreadyExists      = errors.New("document already exists")
	ErrInvalidName        = errors.New("invalid document name")
	ErrStoreUnavailable   = errors.New("store unavailable")
	ErrUnauthenticated    = errors.New("must be signed in")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
