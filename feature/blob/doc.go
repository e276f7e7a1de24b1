// Package blob implements the HTTP-triggered blob save function.
//
// Every request builds a container.Manager from the configured credential,
// initializes the target container (creating it when missing) and then saves
// or reads the blob. Nothing is cached between requests.
//
// # HTTP Endpoints
//
//   - POST /containers/:containerName/blobs/:blobName : Save the text body. Empty bodies get 400.
//   - GET /containers/:containerName/blobs/:blobName : Read the blob. Missing blobs get 404.
//   - GET /containers/:containerName/uploads : Recent uploads (only with a database).
//
// # Upload Ledger
//
// When a database connection is configured, every successful save is recorded
// in the blob_uploads table together with the request RayID.
package blob
