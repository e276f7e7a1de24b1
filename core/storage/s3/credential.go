package s3

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"blob-integration/core/storage"
)

// Schemes accepted by ParseCredential.
const (
	SchemeS3    = "s3"
	SchemeMinio = "minio"
)

// Options are the connection settings carried by an s3:// or minio:// credential.
//
//	s3://access_key:secret_key@host:port?region=us-east-1&secure=true
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

// IsCredential reports whether the credential uses one of the S3 schemes.
func IsCredential(credential string) bool {
	lower := strings.ToLower(strings.TrimSpace(credential))
	return strings.HasPrefix(lower, SchemeS3+"://") || strings.HasPrefix(lower, SchemeMinio+"://")
}

// ParseCredential extracts connection options from an S3 credential URI.
// s3:// defaults to TLS, minio:// defaults to plain HTTP.
func ParseCredential(credential string) (Options, error) {
	u, err := url.Parse(strings.TrimSpace(credential))
	if err != nil {
		return Options{}, fmt.Errorf("%w: %v", storage.ErrInvalidCredential, err)
	}

	var opts Options
	switch strings.ToLower(u.Scheme) {
	case SchemeS3:
		opts.UseSSL = true
	case SchemeMinio:
		opts.UseSSL = false
	default:
		return Options{}, fmt.Errorf("%w: unsupported scheme %q", storage.ErrInvalidCredential, u.Scheme)
	}

	if u.Host == "" {
		return Options{}, fmt.Errorf("%w: missing endpoint host", storage.ErrInvalidCredential)
	}
	if u.User == nil || u.User.Username() == "" {
		return Options{}, fmt.Errorf("%w: missing access key", storage.ErrInvalidCredential)
	}

	opts.Endpoint = u.Host
	opts.AccessKey = u.User.Username()
	opts.SecretKey, _ = u.User.Password()

	q := u.Query()
	opts.Region = q.Get("region")
	if v := q.Get("secure"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return Options{}, fmt.Errorf("%w: secure=%q", storage.ErrInvalidCredential, v)
		}
		opts.UseSSL = secure
	}

	return opts, nil
}
