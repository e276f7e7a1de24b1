package container

import (
	"errors"

	"blob-integration/core/storage"
)

var (
	// ErrNotInitialized is returned by Save and Read before Initialize succeeded.
	ErrNotInitialized = errors.New("attempt to operate on an uninitialized container manager")

	// ErrInvalidCredential is returned when the credential is missing or cannot be resolved.
	ErrInvalidCredential = storage.ErrInvalidCredential

	// ErrNotFound is returned by Read when the blob does not exist.
	ErrNotFound = storage.ErrNotFound
)
