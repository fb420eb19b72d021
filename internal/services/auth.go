package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"eventboard/internal/domain"
	"eventboard/internal/metrics"
)

const fallbackDevUser = "dev-user"

type identityResolver struct {
	verifier domain.IdentityVerifier
	devMode  bool
	devUser  string
	logger   zerolog.Logger
}

// NewIdentityResolver returns a resolver that verifies tokens with verifier unless devMode is on
// or the request carries the development bypass.
func NewIdentityResolver(verifier domain.IdentityVerifier, devMode bool, devUser string, logger zerolog.Logger) domain.IdentityResolver {
	if devUser == "" {
		devUser = fallbackDevUser
	}
	return &identityResolver{
		verifier: verifier,
		devMode:  devMode,
		devUser:  devUser,
		logger:   logger.With().Str("component", "identity").Logger(),
	}
}

func (r *identityResolver) Resolve(ctx context.Context, idToken string, bypass bool) (string, error) {
	if r.devMode || bypass {
		metrics.RecordIdentityVerification("dev")
		return r.devUser, nil
	}
	if !isJWS(idToken) {
		metrics.RecordIdentityVerification("invalid_format")
		return "", domain.ErrInvalidTokenFormat
	}

	claims, err := r.verifier.Verify(ctx, idToken)
	if err != nil {
		outcome := verificationOutcome(err)
		metrics.RecordIdentityVerification(outcome)
		r.logger.Debug().Err(err).Str("outcome", outcome).Msg("identity verification failed")
		return "", err
	}
	metrics.RecordIdentityVerification("verified")
	r.logger.Debug().Str("sub", claims.Subject).Msg("identity verified")
	return claims.Subject, nil
}

func (r *identityResolver) ResolveOptional(bypass bool) string {
	if r.devMode || bypass {
		return r.devUser
	}
	return ""
}

// isJWS reports whether token has exactly three non-empty dot-separated segments.
func isJWS(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}

func verificationOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrVerificationParse):
		return "parse_error"
	case errors.Is(err, domain.ErrSubjectMissing):
		return "subject_missing"
	default:
		return "rejected"
	}
}
