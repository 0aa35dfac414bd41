package util

import "errors"

var (
	ErrDivisionUndefined  = errors.New("weight sum is zero, percentage undefined")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("all fields are required")
	ErrTokenRevoked       = errors.New("token revoked")
)
