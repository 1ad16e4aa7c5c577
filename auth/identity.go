package auth

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

// IdentityClaims are the profile claims carried by an external id token.
type IdentityClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (c *IdentityClaims) Validate(_ context.Context) error {
	return nil
}

// IdentityVerifier checks id tokens issued by the external identity
// provider and returns the profile claims they carry.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*IdentityClaims, error)
}

// Auth0Verifier verifies id tokens against the tenant's JWKS.
type Auth0Verifier struct {
	validator *validator.Validator
}

func NewAuth0Verifier(domain, audience string) (*Auth0Verifier, error) {
	issuerURL, err := url.Parse("https://" + domain + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid auth0 domain: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{audience},
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &IdentityClaims{}
		}),
	)
	if err != nil {
		return nil, err
	}

	return &Auth0Verifier{validator: jwtValidator}, nil
}

func (a *Auth0Verifier) Verify(ctx context.Context, idToken string) (*IdentityClaims, error) {
	claims, err := a.validator.ValidateToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	validated, ok := claims.(*validator.ValidatedClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type %T", claims)
	}
	identity, ok := validated.CustomClaims.(*IdentityClaims)
	if !ok {
		return nil, fmt.Errorf("id token carries no profile claims")
	}

	return identity, nil
}
