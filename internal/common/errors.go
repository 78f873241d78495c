package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrMemberNotFound     = errors.New("member not found")

	// Ad errors
	ErrAdNotFound = errors.New("ad not found")

	// Chat errors
	ErrThreadNotFound  = errors.New("thread not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrSelfThread      = errors.New("cannot start a conversation with yourself")
	ErrEmptyMessage    = errors.New("message text must not be empty")
	ErrOwnMessageRead  = errors.New("cannot mark own message as read")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)
