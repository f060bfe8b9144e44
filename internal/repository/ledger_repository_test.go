package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/sharearahammed/mega-earning-server/internal/model"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestLockForUpdateEmitsLockingClause(t *testing.T) {
	db := dryRunDB(t)

	stmt := lockForUpdate(db).
		Where("email = ?", "worker@example.com").
		Find(&model.User{}).Statement

	assert.Contains(t, stmt.SQL.String(), "FOR UPDATE")
}

func TestPendingForTaskRejectsOnlyPendingRows(t *testing.T) {
	db := dryRunDB(t)
	taskID := uuid.New()

	stmt := pendingForTask(db, taskID).
		Update("status", model.SubmissionStatusRejected).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "UPDATE")
	assert.Contains(t, sql, "task_id = ? AND status = ?")
	assert.Contains(t, stmt.Vars, taskID)
	assert.Contains(t, stmt.Vars, model.SubmissionStatusPending)
	assert.Contains(t, stmt.Vars, model.SubmissionStatusRejected)
}
