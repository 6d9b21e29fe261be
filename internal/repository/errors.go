package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrStoreUnavailable is returned when the backing store cannot be
	// reached or a write fails. Callers decide whether to prompt a retry;
	// the repository never retries on its own.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrDuplicatePhone is returned when a driver registration would bind a
	// phone number that already belongs to a different driver record.
	ErrDuplicatePhone = errors.New("phone number already registered")
)
