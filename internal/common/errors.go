// Package common defines shared constants and sentinel errors used across
// client layers of emforms. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrRequestFailed is the single error kind surfaced to the user after a
	// create, update or delete call did not succeed.
	ErrRequestFailed = errors.New("request failed")

	// Transport-level errors.
	ErrorUnavailable  = errors.New("server unavailable")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrTokenExpired   = errors.New("token expired")

	// Input errors.
	ErrorUnknownKind = errors.New("unknown entity kind")
)
