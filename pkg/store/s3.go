package store

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the S3 client used by S3Store.
// *s3.Client from aws-sdk-go-v2 satisfies it.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store keeps one object per key in an S3 bucket.
// It's suitable for durable session state that outlives server instances.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	st := store.NewS3Store(s3.NewFromConfig(cfg), "my-bucket")
type S3Store struct {
	client S3API
	bucket string
	prefix string
}

// S3StoreOption configures S3Store behavior.
type S3StoreOption func(*s3StoreConfig)

type s3StoreConfig struct {
	prefix string
}

// WithS3Prefix sets the object key prefix for stored entries.
// Default: "sessionslot/".
func WithS3Prefix(prefix string) S3StoreOption {
	return func(c *s3StoreConfig) {
		c.prefix = prefix
	}
}

// NewS3Store creates a new S3-backed store.
func NewS3Store(client S3API, bucket string, opts ...S3StoreOption) *S3Store {
	cfg := &s3StoreConfig{
		prefix: "sessionslot/",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: cfg.prefix,
	}
}

// objectKey returns the S3 object key for an entry.
func (s *S3Store) objectKey(key string) string {
	return s.prefix + key
}

// Get retrieves the value for key if an object exists.
func (s *S3Store) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		var notFound *types.NoSuchKey
		if errors.As(err, &notFound) {
			return "", false, nil
		}
		return "", false, err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return "", false, err
	}

	return string(data), true, nil
}

// Set writes the value for key, creating or overwriting the object.
func (s *S3Store) Set(ctx context.Context, key, value string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        strings.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	return err
}

// Delete removes the object for key. S3 treats deleting a missing
// object as success, which matches the Store contract.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	return err
}
