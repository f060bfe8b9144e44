package auth

import (
	"context"
	"time"

	"github.com/sharearahammed/mega-earning-server/internal/cache"
)

const blacklistKeyPrefix = "blacklist:token:"

// TokenStoreInterface defines the interface for token blacklist operations.
type TokenStoreInterface interface {
	BlacklistToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, tokenID string) bool
}

// TokenStore tracks logged-out tokens in Redis until their natural expiry.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// BlacklistToken marks a token ID as revoked for the remaining TTL.
func (s *TokenStore) BlacklistToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, blacklistKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsTokenBlacklisted reports whether a token ID has been revoked. Cache
// misses (including Redis being down) fail open: the token's own expiry
// still bounds its lifetime.
func (s *TokenStore) IsTokenBlacklisted(ctx context.Context, tokenID string) bool {
	data, _ := s.cache.Get(ctx, blacklistKeyPrefix+tokenID)
	return data != nil
}
