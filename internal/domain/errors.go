package domain

import "errors"

var (
	ErrSecretTokenRequired = errors.New("secret token required")
	ErrInvalidSecretToken  = errors.New("invalid secret token")
)
