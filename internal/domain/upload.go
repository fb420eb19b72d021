package domain

import "context"

// UploadTarget is a time-limited write destination for a client-side file upload.
// swagger:model UploadTarget
type UploadTarget struct {
	UploadURL string `json:"uploadUrl"`
	Path      string `json:"path"`
	PublicURL string `json:"publicUrl"`
}

// UploadSigner issues a signed upload URL for an object path inside the image bucket.
type UploadSigner interface {
	SignUpload(ctx context.Context, path string) (string, error)
}

// UploadService issues upload destinations under generated object paths.
type UploadService interface {
	IssueUploadURL(ctx context.Context, filename, prefix string) (*UploadTarget, error)
}
