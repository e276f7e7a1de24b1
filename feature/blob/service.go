package blob

import (
	"context"
	"errors"
	"strings"

	"blob-integration/core/container"
	"blob-integration/core/storage"

	"go.uber.org/zap"
)

// ErrEmptyContent is returned when a save carries an empty or whitespace-only body.
var ErrEmptyContent = errors.New("content must not be empty")

// Service saves and reads blobs through a container manager built per call.
type Service struct {
	credential string
	resolver   storage.Resolver
	ledger     Ledger
	logger     *zap.Logger
}

// NewService creates a new blob service. ledger may be nil.
func NewService(credential string, resolver storage.Resolver, ledger Ledger, logger *zap.Logger) *Service {
	return &Service{
		credential: credential,
		resolver:   resolver,
		ledger:     ledger,
		logger:     logger,
	}
}

// HasLedger reports whether uploads are recorded.
func (s *Service) HasLedger() bool {
	return s.ledger != nil
}

// Save writes content to containerName/blobName, creating the container if needed.
func (s *Service) Save(ctx context.Context, containerName, blobName, content, rayID string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}

	mgr, err := s.manager(ctx, containerName)
	if err != nil {
		return err
	}
	if err := mgr.Save(ctx, blobName, content); err != nil {
		return err
	}

	if s.ledger != nil {
		rec := &UploadRecord{
			Container: containerName,
			Blob:      blobName,
			Size:      len(content),
			RayID:     rayID,
		}
		if err := s.ledger.Record(ctx, rec); err != nil {
			// Ledger failures never fail a stored blob.
			s.logger.Warn("Failed to record upload", zap.String("container", containerName), zap.String("blob", blobName), zap.Error(err))
		}
	}
	return nil
}

// Read returns the content of containerName/blobName.
func (s *Service) Read(ctx context.Context, containerName, blobName string) (string, error) {
	mgr, err := s.manager(ctx, containerName)
	if err != nil {
		return "", err
	}
	return mgr.Read(ctx, blobName)
}

// Uploads lists recent uploads recorded for containerName.
func (s *Service) Uploads(ctx context.Context, containerName string, limit int) ([]UploadRecord, error) {
	if s.ledger == nil {
		return nil, nil
	}
	return s.ledger.Recent(ctx, containerName, limit)
}

func (s *Service) manager(ctx context.Context, containerName string) (*container.Manager, error) {
	mgr, err := container.New(s.credential,
		container.WithResolver(s.resolver),
		container.WithLogger(s.logger),
	)
	if err != nil {
		return nil, err
	}
	if err := mgr.Initialize(ctx, containerName); err != nil {
		return nil, err
	}
	return mgr, nil
}
