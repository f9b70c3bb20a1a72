package report

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ObjectPutter is the part of the S3 client the archiver uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archiver keeps a copy of generated reports in a bucket.
type S3Archiver struct {
	client ObjectPutter
	bucket string
	prefix string
}

type S3Config struct {
	Bucket    string
	Region    string
	KeyID     string
	Secret    string
	Endpoint  string
	KeyPrefix string
}

// NewS3Archiver signs with static credentials when a key id is given;
// without one requests go out unsigned. A custom endpoint switches to
// path-style addressing for S3-compatible stores.
func NewS3Archiver(cfg S3Config) *S3Archiver {
	opts := s3.Options{
		Region: cfg.Region,
	}
	if cfg.KeyID != "" {
		opts.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.KeyID, cfg.Secret, ""),
		)
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return NewS3ArchiverWithClient(s3.New(opts), cfg.Bucket, cfg.KeyPrefix)
}

func NewS3ArchiverWithClient(client ObjectPutter, bucket, prefix string) *S3Archiver {
	return &S3Archiver{client: client, bucket: bucket, prefix: prefix}
}

// Archive uploads body under prefix/name and returns the object key.
func (a *S3Archiver) Archive(ctx context.Context, name string, body []byte) (string, error) {
	key := path.Join(a.prefix, name)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType(name)),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", a.bucket, key, err)
	}
	return key, nil
}

func contentType(name string) string {
	if path.Ext(name) == ".csv" {
		return "text/csv; charset=utf-8"
	}
	return xlsxContentType
}
