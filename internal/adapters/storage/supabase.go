package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"eventboard/internal/domain"
)

type supabaseSigner struct {
	client     *http.Client
	baseURL    string
	serviceKey string
	bucket     string
}

// NewSupabaseSigner returns a signer that calls the Supabase Storage signed-upload endpoint.
func NewSupabaseSigner(client *http.Client, baseURL, serviceKey, bucket string) domain.UploadSigner {
	if client == nil {
		client = http.DefaultClient
	}
	return &supabaseSigner{
		client:     client,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
	}
}

type signUploadResponse struct {
	URL string `json:"url"`
}

type storageErrorResponse struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

func (s *supabaseSigner) SignUpload(ctx context.Context, path string) (string, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/upload/sign/%s/%s", s.baseURL, s.bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("apikey", s.serviceKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &domain.StoreError{Op: "storage.sign_upload", Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.StoreError{Op: "storage.sign_upload", Message: err.Error(), Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		var e storageErrorResponse
		msg := strings.TrimSpace(string(body))
		if json.Unmarshal(body, &e) == nil && e.Message != "" {
			msg = e.Message
		}
		return "", &domain.StoreError{
			Op:      "storage.sign_upload",
			Code:    e.StatusCode,
			Message: msg,
			Err:     fmt.Errorf("storage api returned status: %d", resp.StatusCode),
		}
	}

	var data signUploadResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("failed to decode storage response: %w", err)
	}
	if data.URL == "" {
		return "", &domain.StoreError{Op: "storage.sign_upload", Message: "storage response missing url"}
	}
	return s.baseURL + "/storage/v1" + data.URL, nil
}
