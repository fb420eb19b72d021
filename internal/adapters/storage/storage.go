package storage

import (
	"fmt"

	"github.com/rs/zerolog"

	"eventboard/config"
	"eventboard/internal/domain"
)

// NewUploadSigner creates a signer from config. Provider "supabase" uses the Supabase Storage API,
// "s3" presigns PUT requests against an S3-compatible endpoint and "noop" returns deterministic fake URLs.
func NewUploadSigner(cfg config.StorageConfig, logger zerolog.Logger) (domain.UploadSigner, error) {
	switch cfg.Provider {
	case "supabase":
		return NewSupabaseSigner(nil, cfg.BaseURL, cfg.ServiceRoleKey, cfg.Bucket), nil
	case "s3":
		return NewS3Signer(S3Config{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Bucket:          cfg.Bucket,
			Expiry:          cfg.SignedURLExpiry,
		}), nil
	case "noop":
		logger.Warn().Msg("storage provider is noop, upload URLs will not accept files")
		return &noopSigner{baseURL: cfg.BaseURL, bucket: cfg.Bucket}, nil
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

// PublicURL returns the public-read URL of path inside bucket.
func PublicURL(baseURL, bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", baseURL, bucket, path)
}
