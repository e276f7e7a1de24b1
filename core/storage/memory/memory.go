// Package memory implements storage.Backend in process memory.
//
// It is meant for local runs and tests: contents are lost when the process
// exits. A Backend is safe for concurrent use.
package memory

import (
	"context"
	"fmt"
	"sync"

	"blob-integration/core/storage"
)

// Make sure *Backend satisfies storage.Backend.
var _ storage.Backend = (*Backend)(nil)

// Backend holds containers and their blobs in memory.
type Backend struct {
	mu         sync.RWMutex
	containers map[string]map[string][]byte
}

// New creates an empty Backend.
func New() *Backend {
	return &Backend{containers: make(map[string]map[string][]byte)}
}

// Container returns the named container, creating it if needed.
func (b *Backend) Container(ctx context.Context, name string) (storage.Container, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.containers[name]; !ok {
		b.containers[name] = make(map[string][]byte)
	}
	return &container{backend: b, name: name}, nil
}

// Containers returns the number of containers created so far.
func (b *Backend) Containers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.containers)
}

type container struct {
	backend *Backend
	name    string
}

func (c *container) Name() string {
	return c.name
}

func (c *container) Put(ctx context.Context, blobName string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]byte, len(data))
	copy(stored, data)

	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	c.backend.containers[c.name][blobName] = stored
	return nil
}

func (c *container) Get(ctx context.Context, blobName string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.backend.mu.RLock()
	defer c.backend.mu.RUnlock()
	data, ok := c.backend.containers[c.name][blobName]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", c.name, blobName, storage.ErrNotFound)
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}
