// Package common contains shared constants and sentinel errors used across
// Smart Fit client components.
package common

// CredentialStorageKey is the storage-slot key under which the raw JWT is
// persisted. It matches the key the web client uses so both frontends can
// share a storage convention.
const CredentialStorageKey = "smart_fit_girl_token"

// RequestIDHeaderName is the HTTP header carrying the per-request
// correlation id on outbound requests.
const RequestIDHeaderName = "X-Request-ID"
