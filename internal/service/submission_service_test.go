package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "github.com/sharearahammed/mega-earning-server/internal/errors"
	"github.com/sharearahammed/mega-earning-server/internal/model"
)

func TestSubmissionService_Create_SnapshotsTask(t *testing.T) {
	taskID := uuid.New()
	task := &model.Task{
		ID:            taskID,
		CreatorEmail:  "creator@example.com",
		Title:         "Review app",
		PayableAmount: decimal.NewFromInt(2),
	}
	worker := &model.User{Email: "worker@example.com", Name: "Worker A", Role: model.RoleWorker}

	mockSubs := new(MockSubmissionRepository)
	mockTasks := new(MockTaskRepository)
	mockLedger := new(MockLedgerRepository)

	mockTasks.On("FindByID", mock.Anything, taskID).Return(task, nil)
	mockSubs.On("Create", mock.Anything, mock.AnythingOfType("*model.Submission")).Return(nil)

	svc := NewSubmissionService(mockSubs, mockTasks, mockLedger, nil)
	submission, err := svc.Create(context.Background(), taskID, worker, "done, see screenshot")

	assert.NoError(t, err)
	assert.Equal(t, taskID, submission.TaskID)
	assert.Equal(t, "Review app", submission.TaskTitle)
	assert.Equal(t, "creator@example.com", submission.CreatorEmail)
	assert.Equal(t, "worker@example.com", submission.WorkerEmail)
	assert.True(t, submission.PayableAmount.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, model.SubmissionStatusPending, submission.Status)
	mockSubs.AssertExpectations(t)
}

func TestSubmissionService_Create_TaskMissing(t *testing.T) {
	taskID := uuid.New()
	worker := &model.User{Email: "worker@example.com", Role: model.RoleWorker}

	mockSubs := new(MockSubmissionRepository)
	mockTasks := new(MockTaskRepository)
	mockLedger := new(MockLedgerRepository)
	mockTasks.On("FindByID", mock.Anything, taskID).Return(nil, gormNotFound())

	svc := NewSubmissionService(mockSubs, mockTasks, mockLedger, nil)
	_, err := svc.Create(context.Background(), taskID, worker, "detail")
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestSubmissionService_Approve(t *testing.T) {
	submissionID := uuid.New()
	pending := &model.Submission{
		ID:            submissionID,
		CreatorEmail:  "creator@example.com",
		WorkerEmail:   "worker@example.com",
		PayableAmount: decimal.NewFromInt(2),
		Status:        model.SubmissionStatusPending,
	}
	approved := &model.Submission{
		ID:            submissionID,
		CreatorEmail:  "creator@example.com",
		WorkerEmail:   "worker@example.com",
		PayableAmount: decimal.NewFromInt(2),
		Status:        model.SubmissionStatusApproved,
	}

	t.Run("creator approves pending submission once", func(t *testing.T) {
		mockSubs := new(MockSubmissionRepository)
		mockLedger := new(MockLedgerRepository)
		mockSubs.On("FindByID", mock.Anything, submissionID).Return(pending, nil)
		mockLedger.On("ApproveSubmission", mock.Anything, submissionID).Return(approved, nil)

		svc := NewSubmissionService(mockSubs, new(MockTaskRepository), mockLedger, nil)
		result, err := svc.Approve(context.Background(), submissionID, "creator@example.com")

		assert.NoError(t, err)
		assert.Equal(t, model.SubmissionStatusApproved, result.Status)
		mockLedger.AssertNumberOfCalls(t, "ApproveSubmission", 1)
	})

	t.Run("second approval is a conflict, no second credit", func(t *testing.T) {
		mockSubs := new(MockSubmissionRepository)
		mockLedger := new(MockLedgerRepository)
		// Already terminal: service refuses before touching the ledger.
		mockSubs.On("FindByID", mock.Anything, submissionID).Return(approved, nil)

		svc := NewSubmissionService(mockSubs, new(MockTaskRepository), mockLedger, nil)
		_, err := svc.Approve(context.Background(), submissionID, "creator@example.com")

		assert.ErrorIs(t, err, apperrors.ErrSubmissionFinalized)
		mockLedger.AssertNotCalled(t, "ApproveSubmission", mock.Anything, mock.Anything)
	})

	t.Run("non-creator forbidden", func(t *testing.T) {
		mockSubs := new(MockSubmissionRepository)
		mockLedger := new(MockLedgerRepository)
		mockSubs.On("FindByID", mock.Anything, submissionID).Return(pending, nil)

		svc := NewSubmissionService(mockSubs, new(MockTaskRepository), mockLedger, nil)
		_, err := svc.Approve(context.Background(), submissionID, "intruder@example.com")

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockLedger.AssertNotCalled(t, "ApproveSubmission", mock.Anything, mock.Anything)
	})
}

func TestSubmissionService_Approve_AfterTaskDeleted(t *testing.T) {
	// Deleting a task rejects its pending submissions while refunding the
	// creator, so a later approval of a leftover submission must conflict
	// instead of crediting coins the creator already got back.
	submissionID := uuid.New()
	leftover := &model.Submission{
		ID:            submissionID,
		CreatorEmail:  "creator@example.com",
		WorkerEmail:   "worker@example.com",
		PayableAmount: decimal.NewFromInt(2),
		Status:        model.SubmissionStatusRejected,
	}

	mockSubs := new(MockSubmissionRepository)
	mockLedger := new(MockLedgerRepository)
	mockSubs.On("FindByID", mock.Anything, submissionID).Return(leftover, nil)

	svc := NewSubmissionService(mockSubs, new(MockTaskRepository), mockLedger, nil)
	_, err := svc.Approve(context.Background(), submissionID, "creator@example.com")

	assert.ErrorIs(t, err, apperrors.ErrSubmissionFinalized)
	mockLedger.AssertNotCalled(t, "ApproveSubmission", mock.Anything, mock.Anything)
}

func TestSubmissionService_Reject_NoCoinEffect(t *testing.T) {
	submissionID := uuid.New()
	pending := &model.Submission{
		ID:           submissionID,
		CreatorEmail: "creator@example.com",
		Status:       model.SubmissionStatusPending,
	}
	rejected := &model.Submission{
		ID:           submissionID,
		CreatorEmail: "creator@example.com",
		Status:       model.SubmissionStatusRejected,
	}

	mockSubs := new(MockSubmissionRepository)
	mockLedger := new(MockLedgerRepository)
	mockSubs.On("FindByID", mock.Anything, submissionID).Return(pending, nil)
	mockLedger.On("RejectSubmission", mock.Anything, submissionID).Return(rejected, nil)

	svc := NewSubmissionService(mockSubs, new(MockTaskRepository), mockLedger, nil)
	result, err := svc.Reject(context.Background(), submissionID, "creator@example.com")

	assert.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusRejected, result.Status)
	mockLedger.AssertNotCalled(t, "ApproveSubmission", mock.Anything, mock.Anything)
}
