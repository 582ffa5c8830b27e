package usecase

import "errors"

var (
	// ErrUserNotFound means the resolved caller id has no stored aggregate.
	ErrUserNotFound = errors.New("user not found")

	// ErrItemNotFound means the id is absent from the target collection,
	// either because it never existed or was already removed.
	ErrItemNotFound = errors.New("item not found")

	// ErrStorageUnavailable wraps driver failures. Retry policy belongs to
	// the caller; repositories never retry.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
