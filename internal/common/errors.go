package common

import "errors"

var (

	// storage specific errors
	ErrorNotFound = errors.New("not found")

	// transport specific errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")

	// credential errors (invalid or malformed token)
	ErrInvalidToken = errors.New("invalid token")

	// token lifecycle errors
	ErrTokenExpired = errors.New("token expired")
)
