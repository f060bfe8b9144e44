package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sharearahammed/mega-earning-server/internal/model"
)

func TestReportService_TopEarners(t *testing.T) {
	t.Run("fewer workers than the limit returns exactly that many", func(t *testing.T) {
		workers := []model.User{
			{Name: "A", Email: "a@example.com", Role: model.RoleWorker, Coins: decimal.NewFromInt(120)},
			{Name: "B", Email: "b@example.com", Role: model.RoleWorker, Coins: decimal.NewFromInt(80)},
			{Name: "C", Email: "c@example.com", Role: model.RoleWorker, Coins: decimal.NewFromInt(15)},
		}

		mockUsers := new(MockUserRepository)
		mockSubs := new(MockSubmissionRepository)
		mockUsers.On("TopWorkersByCoins", mock.Anything, 6).Return(workers, nil)
		mockSubs.On("CountApprovedByWorkers", mock.Anything, []string{"a@example.com", "b@example.com", "c@example.com"}).
			Return(map[string]int64{"a@example.com": 12, "b@example.com": 7}, nil)

		svc := NewReportService(mockUsers, mockSubs, nil)
		earners, err := svc.TopEarners(context.Background())

		assert.NoError(t, err)
		assert.Len(t, earners, 3)
		assert.Equal(t, "a@example.com", earners[0].Email)
		assert.Equal(t, int64(12), earners[0].ApprovedCount)
		assert.Equal(t, int64(7), earners[1].ApprovedCount)
		// worker with no approvals still appears, with a zero count
		assert.Equal(t, int64(0), earners[2].ApprovedCount)
		// descending by coins
		assert.True(t, earners[0].Coins.GreaterThanOrEqual(earners[1].Coins))
		assert.True(t, earners[1].Coins.GreaterThanOrEqual(earners[2].Coins))
	})

	t.Run("no eligible workers yields an empty list, not an error", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockSubs := new(MockSubmissionRepository)
		mockUsers.On("TopWorkersByCoins", mock.Anything, 6).Return([]model.User{}, nil)
		mockSubs.On("CountApprovedByWorkers", mock.Anything, []string{}).
			Return(map[string]int64{}, nil)

		svc := NewReportService(mockUsers, mockSubs, nil)
		earners, err := svc.TopEarners(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, earners)
		assert.NotNil(t, earners)
	})
}
