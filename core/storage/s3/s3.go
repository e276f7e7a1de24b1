package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"blob-integration/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Error codes returned by S3 compatible services.
const (
	codeNoSuchKey               = "NoSuchKey"
	codeBucketAlreadyOwnedByYou = "BucketAlreadyOwnedByYou"
)

// Make sure *Backend satisfies storage.Backend.
var _ storage.Backend = (*Backend)(nil)

// Backend maps containers onto S3 buckets.
type Backend struct {
	client      Client
	region      string
	contentType string
	logger      *zap.Logger
}

// New creates a Backend on top of an existing client.
func New(client Client, region, contentType string, logger *zap.Logger) *Backend {
	if contentType == "" {
		contentType = storage.DefaultContentType
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{client: client, region: region, contentType: contentType, logger: logger}
}

// Open parses an s3:// or minio:// credential and connects to the endpoint.
func Open(credential string, cfg storage.Config, logger *zap.Logger) (*Backend, error) {
	opts, err := ParseCredential(credential)
	if err != nil {
		return nil, err
	}

	client, err := NewClient(opts, cfg.Timeout())
	if err != nil {
		return nil, err
	}

	return New(client, opts.Region, cfg.BlobContentType(), logger), nil
}

// Container returns a handle to the bucket, creating the bucket when missing.
func (b *Backend) Container(ctx context.Context, name string) (storage.Container, error) {
	exists, err := b.client.BucketExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err := b.client.MakeBucket(ctx, name, minio.MakeBucketOptions{Region: b.region})
		if err != nil && minio.ToErrorResponse(err).Code != codeBucketAlreadyOwnedByYou {
			return nil, fmt.Errorf("failed to create bucket %s: %w", name, err)
		}
		b.logger.Info("Created bucket", zap.String("bucket", name))
	}

	return &bucket{backend: b, name: name}, nil
}

type bucket struct {
	backend *Backend
	name    string
}

func (c *bucket) Name() string {
	return c.name
}

func (c *bucket) Put(ctx context.Context, blobName string, data []byte) error {
	opts := minio.PutObjectOptions{ContentType: c.backend.contentType}
	_, err := c.backend.client.PutObject(ctx, c.name, blobName, bytes.NewReader(data), int64(len(data)), opts)
	if err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", c.name, blobName, err)
	}
	return nil
}

func (c *bucket) Get(ctx context.Context, blobName string) ([]byte, error) {
	obj, err := c.backend.client.GetObject(ctx, c.name, blobName, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapError(c.name, blobName, err)
	}
	defer obj.Close()

	// The object is fetched lazily, so a missing key surfaces on the first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, mapError(c.name, blobName, err)
	}
	return data, nil
}

func mapError(bucketName, blobName string, err error) error {
	if minio.ToErrorResponse(err).Code == codeNoSuchKey {
		return fmt.Errorf("%s/%s: %w: %w", bucketName, blobName, storage.ErrNotFound, err)
	}
	return fmt.Errorf("failed to download %s/%s: %w", bucketName, blobName, err)
}
