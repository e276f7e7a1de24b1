// Package azureblob implements storage.Backend for Azure Blob Storage.
//
// The credential is an Azure Storage connection string, including the
// development shortcut "UseDevelopmentStorage=true" that targets a local
// Azurite emulator. Blobs are written as block blobs in a single request.
package azureblob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"blob-integration/core/storage"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/streaming"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	azcontainer "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"go.uber.org/zap"
)

// Make sure *Backend satisfies storage.Backend.
var _ storage.Backend = (*Backend)(nil)

// DevelopmentStorage is the shortcut connection string for the local emulator.
const DevelopmentStorage = "UseDevelopmentStorage=true"

// developmentConnectionString is the well-known Azurite account on its default port.
const developmentConnectionString = "DefaultEndpointsProtocol=http;" +
	"AccountName=devstoreaccount1;" +
	"AccountKey=Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw==;" +
	"BlobEndpoint=http://127.0.0.1:10000/devstoreaccount1;"

// expand replaces the development shortcut with the emulator connection string.
func expand(connectionString string) string {
	trimmed := strings.TrimSuffix(strings.TrimSpace(connectionString), ";")
	if strings.EqualFold(trimmed, DevelopmentStorage) {
		return developmentConnectionString
	}
	return connectionString
}

// Backend is a connection to one Azure Storage account.
type Backend struct {
	client      *azblob.Client
	contentType string
	logger      *zap.Logger
}

// Open parses the connection string and builds a client for the account.
// No request is sent until Container is called.
func Open(connectionString string, cfg storage.Config, logger *zap.Logger) (*Backend, error) {
	if strings.TrimSpace(connectionString) == "" {
		return nil, fmt.Errorf("%w: empty connection string", storage.ErrInvalidCredential)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := &azblob.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{
				TryTimeout: time.Duration(cfg.Timeout()) * time.Second,
			},
		},
	}

	client, err := azblob.NewClientFromConnectionString(expand(connectionString), opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrInvalidCredential, err)
	}

	return &Backend{
		client:      client,
		contentType: cfg.BlobContentType(),
		logger:      logger,
	}, nil
}

// Container creates the container if it does not exist and returns a handle to it.
func (b *Backend) Container(ctx context.Context, name string) (storage.Container, error) {
	cc := b.client.ServiceClient().NewContainerClient(name)

	_, err := cc.Create(ctx, nil)
	switch {
	case err == nil:
		b.logger.Info("Created container", zap.String("container", name))
	case bloberror.HasCode(err, bloberror.ContainerAlreadyExists):
		// create-if-not-exists
	default:
		return nil, fmt.Errorf("failed to create container %s: %w", name, err)
	}

	return &container{client: cc, name: name, contentType: b.contentType}, nil
}

type container struct {
	client      *azcontainer.Client
	name        string
	contentType string
}

func (c *container) Name() string {
	return c.name
}

func (c *container) Put(ctx context.Context, blobName string, data []byte) error {
	bb := c.client.NewBlockBlobClient(blobName)

	opts := &blockblob.UploadOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &c.contentType},
	}
	if _, err := bb.Upload(ctx, streaming.NopCloser(bytes.NewReader(data)), opts); err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", c.name, blobName, err)
	}
	return nil
}

func (c *container) Get(ctx context.Context, blobName string) ([]byte, error) {
	bb := c.client.NewBlockBlobClient(blobName)

	resp, err := bb.DownloadStream(ctx, nil)
	if err != nil {
		return nil, mapError(c.name, blobName, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", c.name, blobName, err)
	}
	return data, nil
}

func mapError(containerName, blobName string, err error) error {
	if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
		return fmt.Errorf("%s/%s: %w: %w", containerName, blobName, storage.ErrNotFound, err)
	}
	return fmt.Errorf("failed to download %s/%s: %w", containerName, blobName, err)
}
