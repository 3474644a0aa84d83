package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client is the subset of the S3 API used by S3Storage.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config holds connection settings for Amazon S3 and S3-compatible services.
// Empty Region and credentials fall back to the default AWS configuration chain.
type S3Config struct {
	Bucket         string `env:"S3_BUCKET"`
	Region         string `env:"S3_REGION"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"` // for MinIO and other compatible services
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE"`
}

// S3Option configures NewS3Storage.
type S3Option func(*s3Options)

type s3Options struct {
	client     S3Client
	httpClient *http.Client
}

// WithS3Client uses a pre-configured client instead of building one from S3Config.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) { o.client = client }
}

func WithHTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) { o.httpClient = client }
}

// S3Storage reads objects from one bucket. It is safe for concurrent use.
type S3Storage struct {
	client S3Client
	bucket string
}

// NewS3Storage creates a storage for cfg.Bucket.
func NewS3Storage(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	}

	var o s3Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.client != nil {
		return &S3Storage{client: o.client, bucket: cfg.Bucket}, nil
	}

	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}
	if o.httpClient != nil {
		loadOpts = append(loadOpts, config.WithHTTPClient(o.httpClient))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
	}

	client := s3.NewFromConfig(awsConfig, func(so *s3.Options) {
		if cfg.Endpoint != "" {
			so.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		so.UsePathStyle = cfg.ForcePathStyle
	})
	return &S3Storage{client: client, bucket: cfg.Bucket}, nil
}

// Open streams the object stored under key.
func (s *S3Storage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return nil, fmt.Errorf("%w: invalid key %q", ErrInvalidURI, key)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyS3Error(err, "s3://"+s.bucket+"/"+key)
	}
	return out.Body, nil
}

// classifyS3Error converts S3 errors to package errors.
func classifyS3Error(err error, location string) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s", ErrOperationTimeout, location)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %s", ErrOperationCanceled, location)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, location)
	}
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, location)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch code := apiErr.ErrorCode(); code {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %s", ErrFileNotFound, location)
		case "NoSuchBucket":
			return fmt.Errorf("%w: %s", ErrBucketNotFound, location)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %s", ErrAccessDenied, location)
		case "RequestTimeout":
			return fmt.Errorf("%w: %s", ErrRequestTimeout, location)
		case "SlowDown", "ServiceUnavailable":
			return fmt.Errorf("%w: %s", ErrServiceUnavailable, location)
		default:
			return fmt.Errorf("%w: %s (code: %s): %v", ErrFailedToOpen, location, code, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrFailedToOpen, location, err)
}
