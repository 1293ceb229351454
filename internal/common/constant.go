// Package common contains constants and helpers shared by the staffdesk
// client packages.
package common

const (
	// AuthorizationHeaderName carries the session credential on outbound
	// requests as "Bearer <token>".
	AuthorizationHeaderName = "Authorization"

	// BearerScheme is the authorization scheme prefix.
	BearerScheme = "Bearer"

	// RequestIDHeaderName tags every outbound request for log correlation.
	RequestIDHeaderName = "X-Request-ID"

	// CredentialKey is the single durable key holding the raw credential.
	CredentialKey = "token"
)
