// Package storage defines the object storage contract used by the container manager.
//
// A Backend is obtained by resolving a credential, a Container handle is obtained
// from a Backend with create-if-missing semantics, and blobs are written and read
// through the Container.
//
// # Implementations
//
//   - azureblob: Azure Blob Storage (and Azurite) using the Azure SDK.
//   - s3: AWS S3 and self-hosted MinIO using the MinIO Go client.
//   - memory: an in-process backend for local runs and tests.
//
// The providers package picks the implementation from the credential form.
//
// # Errors
//
// ErrInvalidCredential and ErrNotFound are shared by all implementations. Every
// other failure is returned as produced by the underlying client, with context
// added through %w wrapping.
//
// # Usage
//
//	backend, err := providers.Open(ctx, cfg, cfg.ConnectionString)
//	ctr, err := backend.Container(ctx, "mycontainer")
//	err = ctr.Put(ctx, "greeting", []byte("hello"))
package storage
