package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sharearahammed/mega-earning-server/internal/auth"
)

func TestAuthService_IssueToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	svc := NewAuthService(jwtService, new(MockTokenStore))

	token, err := svc.IssueToken(context.Background(), "worker@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "worker@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", time.Hour)

	t.Run("valid token gets blacklisted for its remaining lifetime", func(t *testing.T) {
		mockStore := new(MockTokenStore)
		mockStore.On("BlacklistToken", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(nil)

		svc := NewAuthService(jwtService, mockStore)
		token, err := svc.IssueToken(context.Background(), "worker@example.com")
		assert.NoError(t, err)

		assert.NoError(t, svc.Logout(context.Background(), token))
		mockStore.AssertExpectations(t)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		mockStore := new(MockTokenStore)
		svc := NewAuthService(jwtService, mockStore)

		err := svc.Logout(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
		mockStore.AssertNotCalled(t, "BlacklistToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		other := auth.NewJWTService("other-secret", time.Hour)
		foreign, err := other.GenerateToken("worker@example.com")
		assert.NoError(t, err)

		svc := NewAuthService(jwtService, new(MockTokenStore))
		assert.ErrorIs(t, svc.Logout(context.Background(), foreign), ErrInvalidToken)
	})
}
