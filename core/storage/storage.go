package storage

import (
	"context"
	"errors"
)

// DefaultContentType is used for uploads when no content type is configured.
const DefaultContentType = "text/plain; charset=utf-8"

var (
	// ErrInvalidCredential is returned when a credential is missing or cannot be parsed.
	ErrInvalidCredential = errors.New("invalid storage credential")
	// ErrNotFound is returned when a blob does not exist in its container.
	ErrNotFound = errors.New("blob not found")
)

// Backend is a connection to an object storage account.
type Backend interface {
	// Container returns a handle to the named container, creating it when it
	// does not exist yet. Calling it for an existing container is not an error.
	Container(ctx context.Context, name string) (Container, error)
}

// Container is a handle to a single storage container.
type Container interface {
	// Name returns the container name the handle is bound to.
	Name() string
	// Put uploads data as the full content of the named blob, replacing any
	// previous content.
	Put(ctx context.Context, blobName string, data []byte) error
	// Get downloads the full content of the named blob.
	// A missing blob yields an error matching ErrNotFound.
	Get(ctx context.Context, blobName string) ([]byte, error)
}

// Resolver turns a credential into a Backend connection.
type Resolver func(ctx context.Context, credential string) (Backend, error)

// IsNotFound reports whether err means the blob does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
