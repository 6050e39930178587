package domain

import "errors"

// Token verification failures. The Auth middleware treats all three the same
// way (403); the split exists for logging and for tests.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
)
