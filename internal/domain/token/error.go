package token

import "errors"

var (
	ErrMalformed    = errors.New("token is malformed")
	ErrBadSignature = errors.New("token signature is invalid")
	ErrExpired      = errors.New("token is expired")
	ErrNotExpired   = errors.New("token is still valid")
)
