package storage

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeUploader) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

type fakePresigner struct {
	key     string
	expires time.Duration
}

func (f *fakePresigner) PresignGetObject(_ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	opts := s3.PresignOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	f.key = aws.ToString(in.Key)
	f.expires = opts.Expires
	return &v4.PresignedHTTPRequest{URL: "https://bucket.example/" + f.key + "?sig=1"}, nil
}

func TestS3StorageStore(t *testing.T) {
	up := &fakeUploader{}
	pre := &fakePresigner{}
	s := NewS3Storage(up, pre, "docs", 10*time.Minute)
	s.newID = func() string { return "01HX" }

	url, err := s.Store(context.Background(), "case-1", "bill_of_sale", "application/pdf", []byte("%PDF-1.3"))
	require.NoError(t, err)

	assert.Equal(t, "https://bucket.example/cases/case-1/bill_of_sale/01HX.pdf?sig=1", url)
	assert.Equal(t, "docs", aws.ToString(up.input.Bucket))
	assert.Equal(t, "application/pdf", aws.ToString(up.input.ContentType))
	assert.Equal(t, []byte("%PDF-1.3"), up.body)
	assert.Equal(t, "case-1", up.input.Metadata["case_id"])
	assert.Equal(t, 10*time.Minute, pre.expires)
}

func TestS3StorageStoreErrors(t *testing.T) {
	_, err := NewS3Storage(&fakeUploader{}, &fakePresigner{}, "", 0).Store(context.Background(), "c", "k", "application/pdf", nil)
	assert.ErrorIs(t, err, ErrBucketNotConfigured)

	boom := errors.New("access denied")
	_, err = NewS3Storage(&fakeUploader{err: boom}, &fakePresigner{}, "docs", 0).Store(context.Background(), "c", "k", "application/pdf", nil)
	assert.ErrorIs(t, err, boom)
}

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "cases/case-1/complete_package/01HX.pdf", BuildKey("case-1", "complete_package", "01HX"))
}
