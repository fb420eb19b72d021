package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventboard/internal/domain"
)

const (
	defaultUploadPrefix   = "events"
	defaultUploadFilename = "upload.bin"
	uploadTokenLength     = 6
)

type uploadService struct {
	signer    domain.UploadSigner
	publicURL func(path string) string
	now       func() time.Time
	token     func() string
}

// NewUploadService returns an UploadService that signs generated paths with signer.
// publicURL maps an object path to its public-read URL.
func NewUploadService(signer domain.UploadSigner, publicURL func(path string) string) domain.UploadService {
	return &uploadService{
		signer:    signer,
		publicURL: publicURL,
		now:       time.Now,
		token:     randomToken,
	}
}

func (s *uploadService) IssueUploadURL(ctx context.Context, filename, prefix string) (*domain.UploadTarget, error) {
	path := s.objectPath(filename, prefix)
	signed, err := s.signer.SignUpload(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("sign upload: %w", err)
	}
	return &domain.UploadTarget{
		UploadURL: signed,
		Path:      path,
		PublicURL: s.publicURL(path),
	}, nil
}

// objectPath builds {prefix}/{timestamp}-{token}-{filename}. The timestamp is ISO-8601 UTC with
// millisecond precision and ':' and '.' replaced by '-'.
func (s *uploadService) objectPath(filename, prefix string) string {
	if filename == "" {
		filename = defaultUploadFilename
	}
	if prefix == "" {
		prefix = defaultUploadPrefix
	}
	stamp := s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
	return fmt.Sprintf("%s/%s-%s-%s", prefix, stamp, s.token(), filename)
}

func randomToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:uploadTokenLength]
}
