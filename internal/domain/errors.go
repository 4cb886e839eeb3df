package domain

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	ErrInvalidStatus = errors.New("invalid status")
)
