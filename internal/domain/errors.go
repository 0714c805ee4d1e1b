package domain

import "errors"

var (
	// ErrNotFound is returned when a delete or lookup matches no document
	// for the given user.
	ErrNotFound = errors.New("not found")

	// ErrEmptyUsername is returned when a login username is empty after
	// trimming whitespace.
	ErrEmptyUsername = errors.New("username cannot be empty")
)
