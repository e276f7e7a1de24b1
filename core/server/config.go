package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitBytes caps the size of uploaded blob content.
	BodyLimitBytes int `mapstructure:"body_limit_bytes" default:"4194304"`
}

// DefaultBodyLimit is used when BodyLimitBytes is not positive.
const DefaultBodyLimit = 4 * 1024 * 1024

// BodyLimit returns the configured body limit or the default.
func (c Config) BodyLimit() int {
	if c.BodyLimitBytes <= 0 {
		return DefaultBodyLimit
	}
	return c.BodyLimitBytes
}

// AuthEnabled reports whether requests must carry the API key.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}
