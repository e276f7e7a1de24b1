package storage

// Config holds configuration for the storage provider.
type Config struct {
	// ConnectionString identifies the storage account or endpoint.
	// Azure connection strings, s3:// and minio:// URIs and memory:// are accepted.
	ConnectionString string `mapstructure:"connection_string" default:"UseDevelopmentStorage=true"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// ContentType is the content type stamped on uploaded blobs.
	ContentType string `mapstructure:"content_type" default:"text/plain; charset=utf-8"`
}

// Timeout returns the configured timeout, falling back to 30 seconds.
func (c Config) Timeout() int {
	if c.TimeoutSeconds <= 0 {
		return 30
	}
	return c.TimeoutSeconds
}

// BlobContentType returns the configured content type or text/plain.
func (c Config) BlobContentType() string {
	if c.ContentType == "" {
		return DefaultContentType
	}
	return c.ContentType
}
