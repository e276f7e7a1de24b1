package mocks

import (
	"context"

	"blob-integration/core/storage"

	"github.com/stretchr/testify/mock"
)

// Backend is a mock implementation of storage.Backend
type Backend struct {
	mock.Mock
}

func (m *Backend) Container(ctx context.Context, name string) (storage.Container, error) {
	args := m.Called(ctx, name)
	if c, ok := args.Get(0).(storage.Container); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// Container is a mock implementation of storage.Container
type Container struct {
	mock.Mock
}

func (m *Container) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *Container) Put(ctx context.Context, blobName string, data []byte) error {
	args := m.Called(ctx, blobName, data)
	return args.Error(0)
}

func (m *Container) Get(ctx context.Context, blobName string) ([]byte, error) {
	args := m.Called(ctx, blobName)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

// Resolver returns a storage.Resolver that always yields backend and counts its calls.
func Resolver(backend storage.Backend, calls *int) storage.Resolver {
	return func(ctx context.Context, credential string) (storage.Backend, error) {
		if calls != nil {
			*calls++
		}
		return backend, nil
	}
}
