package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/goswift/booking-backend/internal/config"
)

// ObjectPutter is the part of the S3 client the report store uses
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ReportStore writes rendered reports to a single bucket
type S3ReportStore struct {
	client ObjectPutter
	bucket string
}

// NewS3ReportStore creates a report store over an existing client
func NewS3ReportStore(client ObjectPutter, bucket string) *S3ReportStore {
	return &S3ReportStore{client: client, bucket: bucket}
}

// NewS3ReportStoreFromConfig loads AWS credentials from the environment or
// the shared profile and returns a store for the configured bucket. It returns
// nil and no error when no bucket is configured.
func NewS3ReportStoreFromConfig(ctx context.Context, awsCfg config.AWSConfig, reports config.ReportsConfig) (*S3ReportStore, error) {
	if reports.Bucket == "" {
		return nil, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(awsCfg.Region)}
	if awsCfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(awsCfg.Profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for S3: %w", err)
	}

	return NewS3ReportStore(s3.NewFromConfig(cfg), reports.Bucket), nil
}

// Put uploads body under key
func (s *S3ReportStore) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return fmt.Errorf("failed to put s3://%s/%s: %w", s.bucket, key, err)
	}
	return nil
}
