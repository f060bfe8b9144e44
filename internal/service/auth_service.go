package service

import (
	"context"
	"errors"
	"time"

	"github.com/sharearahammed/mega-earning-server/internal/auth"
)

// ErrInvalidToken is returned when a presented token cannot be validated.
var ErrInvalidToken = errors.New("invalid token")

// AuthService issues and revokes access tokens. Identity is the email the
// front-end authenticated; there is no password credential on this side.
type AuthService interface {
	IssueToken(ctx context.Context, email string) (string, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// IssueToken signs a short-lived access token embedding the email.
func (s *authService) IssueToken(ctx context.Context, email string) (string, error) {
	return s.jwtService.GenerateToken(email)
}

// Logout blacklists the token's jti for the remainder of its lifetime, so a
// logged-out token fails closed until it would have expired anyway.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return ErrInvalidToken
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	return s.tokenStore.BlacklistToken(ctx, claims.ID, ttl)
}
