// Package storage keeps rendered documents in S3 and hands out presigned links.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"vehicle_acquisition/internal/infrastructure/awsutil"
	"vehicle_acquisition/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/oklog/ulid/v2"
)

const defaultURLTTL = time.Hour

var ErrBucketNotConfigured = errors.New("documents bucket not configured")

// Uploader is the subset of the S3 client used to store objects.
type Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Presigner defines the interface for presigning S3 GET requests.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type S3Storage struct {
	uploader  Uploader
	presigner Presigner
	bucket    string
	ttl       time.Duration
	newID     func() string
}

var _ interfaces.IDocumentStorage = (*S3Storage)(nil)

func NewS3Storage(uploader Uploader, presigner Presigner, bucket string, ttl time.Duration) *S3Storage {
	if ttl <= 0 {
		ttl = defaultURLTTL
	}
	return &S3Storage{
		uploader:  uploader,
		presigner: presigner,
		bucket:    bucket,
		ttl:       ttl,
		newID:     func() string { return ulid.Make().String() },
	}
}

// NewS3StorageFromRegion builds the S3 client and presigner. A non-empty
// endpoint switches to path-style addressing for LocalStack/MinIO.
func NewS3StorageFromRegion(ctx context.Context, region, endpoint, bucket string, ttl time.Duration) (*S3Storage, error) {
	awsConfig, err := awsutil.Load(ctx, region, endpoint != "")
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3Storage(client, s3.NewPresignClient(client), bucket, ttl), nil
}

// BuildKey constructs the object key for a generated document.
func BuildKey(caseID, kind, id string) string {
	return fmt.Sprintf("cases/%s/%s/%s.pdf", caseID, kind, id)
}

// Store uploads body and returns a presigned GET URL valid for the configured TTL.
func (s *S3Storage) Store(ctx context.Context, caseID, kind, contentType string, body []byte) (string, error) {
	if s.bucket == "" {
		return "", ErrBucketNotConfigured
	}
	key := BuildKey(caseID, kind, s.newID())

	_, err := s.uploader.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
		Metadata: map[string]string{
			"case_id":       caseID,
			"document_kind": kind,
		},
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(o *s3.PresignOptions) { o.Expires = s.ttl })
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, nil
}
