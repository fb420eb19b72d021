package storage

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"eventboard/internal/domain"
)

// S3Config holds configuration for an S3-compatible bucket.
type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Expiry          time.Duration
}

type s3Signer struct {
	presign *s3.PresignClient
	bucket  string
	expiry  time.Duration
}

// NewS3Signer returns a signer that presigns PutObject requests. Path-style addressing is used
// so MinIO and Supabase's S3 gateway work with a plain endpoint.
func NewS3Signer(cfg S3Config) domain.UploadSigner {
	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})
	return &s3Signer{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		expiry:  cfg.Expiry,
	}
}

func (s *s3Signer) SignUpload(ctx context.Context, path string) (string, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", &domain.StoreError{Op: "storage.presign_put", Message: err.Error(), Err: err}
	}
	return req.URL, nil
}
