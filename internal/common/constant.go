package common

const (
	// AuthorizationHeaderName carries the bearer token on protected requests.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme is the auth scheme prefix expected in AuthorizationHeaderName.
	BearerScheme = "Bearer"
)
