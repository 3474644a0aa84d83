package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"strings"
)

// Option configures Open.
type Option func(*options)

type options struct {
	s3     S3Config
	s3Opts []S3Option
}

// WithS3Config sets the connection settings used for s3:// locations.
// The bucket always comes from the location itself.
func WithS3Config(cfg S3Config) Option {
	return func(o *options) { o.s3 = cfg }
}

// WithS3Options forwards options to NewS3Storage.
func WithS3Options(opts ...S3Option) Option {
	return func(o *options) { o.s3Opts = append(o.s3Opts, opts...) }
}

// Open returns a reader for location, which is either a local path,
// a file:// URL or an s3://bucket/key URL. The caller closes the reader.
func Open(ctx context.Context, location string, opts ...Option) (io.ReadCloser, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	scheme, rest, found := strings.Cut(location, "://")
	if !found {
		return openLocal(location)
	}

	switch strings.ToLower(scheme) {
	case "file":
		return openLocal(rest)
	case "s3":
		bucket, key, err := splitS3(location)
		if err != nil {
			return nil, err
		}
		cfg := o.s3
		cfg.Bucket = bucket
		storage, err := NewS3Storage(ctx, cfg, o.s3Opts...)
		if err != nil {
			return nil, err
		}
		return storage.Open(ctx, key)
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURI, scheme)
	}
}

func openLocal(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidURI)
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpen, err)
	}
	if info, err := f.Stat(); err == nil && info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	return f, nil
}

func splitS3(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("%w: expected s3://bucket/key, got %q", ErrInvalidURI, location)
	}
	return u.Host, key, nil
}
