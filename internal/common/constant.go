// Package common contains shared constants and sentinel errors used across
// emforms components.
package common

// RequestIDHeaderName carries a per-call correlation id on outbound requests.
const RequestIDHeaderName = "X-Request-ID"

// AuthorizationHeaderName carries the bearer token on outbound requests.
const AuthorizationHeaderName = "Authorization"
