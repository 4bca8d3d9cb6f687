package service

import "errors"

var (
	// ErrSessionNotFound is surfaced as a client-facing 404.
	ErrSessionNotFound = errors.New("session not found")

	// ErrStoreUnavailable means the store connection was never established.
	ErrStoreUnavailable = errors.New("store not connected")
)
