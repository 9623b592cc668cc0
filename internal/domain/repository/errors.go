package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches the identifier, including
	// identifiers the store cannot parse.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername is returned by UserRepository.Create when the store
	// rejects the insert because the username is taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrOutOfRange is returned when the store rejects a value its column
	// type or check constraint cannot hold.
	ErrOutOfRange = errors.New("value out of range")
)
