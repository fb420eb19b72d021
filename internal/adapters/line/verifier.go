package line

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"

	"eventboard/internal/domain"
)

// verifyResponse is the body returned by the LINE ID token verify endpoint.
// Registered claims (sub, iss, aud, exp, iat) come from jwt.RegisteredClaims.
type verifyResponse struct {
	jwt.RegisteredClaims
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Email   string `json:"email"`
}

type httpVerifier struct {
	client    *http.Client
	verifyURL string
	channelID string
}

// NewVerifier returns an IdentityVerifier that posts tokens to verifyURL with the given channel ID.
// A zero timeout leaves the client without a deadline of its own; the request context still applies.
func NewVerifier(verifyURL, channelID string, timeout time.Duration) domain.IdentityVerifier {
	return NewVerifierWithClient(&http.Client{Timeout: timeout}, verifyURL, channelID)
}

// NewVerifierWithClient is NewVerifier with a caller-supplied HTTP client.
func NewVerifierWithClient(client *http.Client, verifyURL, channelID string) domain.IdentityVerifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpVerifier{client: client, verifyURL: verifyURL, channelID: channelID}
}

func (v *httpVerifier) Verify(ctx context.Context, idToken string) (*domain.IdentityClaims, error) {
	form := url.Values{}
	form.Set("id_token", idToken)
	form.Set("client_id", v.channelID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrVerificationFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrVerificationFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrVerificationFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d %s", domain.ErrVerificationFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var data verifyResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrVerificationParse, strings.TrimSpace(string(body)))
	}
	if data.Subject == "" {
		return nil, domain.ErrSubjectMissing
	}
	return &domain.IdentityClaims{
		Subject: data.Subject,
		Name:    data.Name,
		Picture: data.Picture,
		Email:   data.Email,
	}, nil
}
