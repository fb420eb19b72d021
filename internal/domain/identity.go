package domain

import "context"

// IdentityClaims is the subset of a verified identity token that this service reads.
type IdentityClaims struct {
	Subject string
	Name    string
	Picture string
	Email   string
}

// IdentityVerifier submits an identity token to the provider's verification endpoint.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*IdentityClaims, error)
}

// IdentityResolver turns an identity token, or a development bypass, into a stable user identifier.
type IdentityResolver interface {
	// Resolve returns the caller's user ID. It fails when the token is malformed or rejected.
	Resolve(ctx context.Context, idToken string, bypass bool) (string, error)
	// ResolveOptional returns the development identity when dev mode or bypass applies, otherwise "".
	// It never contacts the identity provider.
	ResolveOptional(bypass bool) string
}
