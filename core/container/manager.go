package container

import (
	"context"
	"fmt"
	"strings"

	"blob-integration/core/storage"
	"blob-integration/core/storage/providers"

	"go.uber.org/zap"
)

// state is either uninitialized or ready.
type state interface {
	handle() (storage.Container, bool)
}

type uninitialized struct{}

func (uninitialized) handle() (storage.Container, bool) { return nil, false }

type ready struct {
	container storage.Container
}

func (r ready) handle() (storage.Container, bool) { return r.container, true }

// Option configures a Manager.
type Option func(*Manager)

// WithResolver sets how the credential is turned into a backend connection.
func WithResolver(resolve storage.Resolver) Option {
	return func(m *Manager) {
		m.resolve = resolve
	}
}

// WithLogger sets the logger used by the manager.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// Manager gates blob operations behind an initialized container handle.
//
// A Manager is not safe for concurrent Initialize calls racing with Save or
// Read; concurrent Save and Read calls on an initialized Manager are fine.
type Manager struct {
	credential string
	resolve    storage.Resolver
	logger     *zap.Logger
	state      state
}

// New creates a Manager bound to credential.
// It fails with ErrInvalidCredential when credential is empty.
func New(credential string, opts ...Option) (*Manager, error) {
	if strings.TrimSpace(credential) == "" {
		return nil, fmt.Errorf("%w: credential is empty", ErrInvalidCredential)
	}

	m := &Manager{
		credential: credential,
		resolve:    providers.Open,
		logger:     zap.NewNop(),
		state:      uninitialized{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Initialize resolves the credential and obtains the named container,
// creating it if it does not exist. It may be called repeatedly; the handle
// from the last successful call is kept. On failure the previous state is
// left untouched.
func (m *Manager) Initialize(ctx context.Context, containerName string) error {
	backend, err := m.resolve(ctx, m.credential)
	if err != nil {
		return fmt.Errorf("failed to resolve storage credential: %w", err)
	}

	c, err := backend.Container(ctx, containerName)
	if err != nil {
		return fmt.Errorf("failed to initialize container %s: %w", containerName, err)
	}

	m.state = ready{container: c}
	m.logger.Debug("Container initialized", zap.String("container", containerName))
	return nil
}

// IsInitialized reports whether a container handle is held.
func (m *Manager) IsInitialized() bool {
	_, ok := m.state.handle()
	return ok
}

// ContainerName returns the name of the initialized container, or "" before
// Initialize succeeded.
func (m *Manager) ContainerName() string {
	c, ok := m.state.handle()
	if !ok {
		return ""
	}
	return c.Name()
}

// Save uploads content as the full value of blobName, overwriting any
// existing blob with that name.
func (m *Manager) Save(ctx context.Context, blobName, content string) error {
	c, err := m.container()
	if err != nil {
		return err
	}
	return c.Put(ctx, blobName, []byte(content))
}

// Read returns the full text content of blobName.
// A missing blob yields an error matching ErrNotFound.
func (m *Manager) Read(ctx context.Context, blobName string) (string, error) {
	c, err := m.container()
	if err != nil {
		return "", err
	}

	data, err := c.Get(ctx, blobName)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (m *Manager) container() (storage.Container, error) {
	c, ok := m.state.handle()
	if !ok {
		return nil, ErrNotInitialized
	}
	return c, nil
}
