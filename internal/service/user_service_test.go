package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/sharearahammed/mega-earning-server/internal/errors"
	"github.com/sharearahammed/mega-earning-server/internal/model"
)

func TestUserService_Upsert(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		role          model.Role
		setupMock     func(*MockUserRepository)
		expectedCoins decimal.Decimal
		expectedError error
	}{
		{
			name:  "first login as worker grants worker bonus",
			email: "new@example.com",
			role:  model.RoleWorker,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gormNotFound())
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedCoins: decimal.NewFromInt(10),
		},
		{
			name:  "first login as task creator grants creator bonus",
			email: "boss@example.com",
			role:  model.RoleTaskCreator,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "boss@example.com").Return(nil, gormNotFound())
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedCoins: decimal.NewFromInt(50),
		},
		{
			name:  "existing user returned untouched",
			email: "old@example.com",
			role:  model.RoleWorker,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "old@example.com").Return(&model.User{
					Email: "old@example.com",
					Role:  model.RoleTaskCreator,
					Coins: decimal.NewFromInt(37),
				}, nil)
			},
			expectedCoins: decimal.NewFromInt(37),
		},
		{
			name:  "unknown role rejected",
			email: "weird@example.com",
			role:  model.Role("superuser"),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "weird@example.com").Return(nil, gormNotFound())
			},
			expectedError: apperrors.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, nil)
			user, err := svc.Upsert(context.Background(), tt.email, "Someone", "", tt.role)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.True(t, user.Coins.Equal(tt.expectedCoins), "coins = %s", user.Coins)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Upsert_LostFirstLoginRace(t *testing.T) {
	winner := &model.User{
		Email: "racer@example.com",
		Role:  model.RoleWorker,
		Coins: decimal.NewFromInt(10),
	}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "racer@example.com").Return(nil, gormNotFound()).Once()
	// Another request created the row between the lookup and the insert.
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
	mockRepo.On("FindByEmail", mock.Anything, "racer@example.com").Return(winner, nil).Once()

	svc := NewUserService(mockRepo, nil)
	user, err := svc.Upsert(context.Background(), "racer@example.com", "Racer", "", model.RoleWorker)

	assert.NoError(t, err)
	assert.Equal(t, winner, user)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateRole(t *testing.T) {
	t.Run("unknown role rejected before hitting the store", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo, nil)

		_, err := svc.UpdateRole(context.Background(), "a@example.com", model.Role("root"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
		mockRepo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("UpdateRole", mock.Anything, "ghost@example.com", model.RoleAdmin).Return(gormNotFound())

		svc := NewUserService(mockRepo, nil)
		_, err := svc.UpdateRole(context.Background(), "ghost@example.com", model.RoleAdmin)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
