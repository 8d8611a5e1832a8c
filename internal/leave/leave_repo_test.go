package leave_test

import (
	"context"
	"testing"
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/leave"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()
	db, mock := testutil.NewMockDB(t)
	repo := leave.NewRepository(db)

	id, requester, deptID := uuid.New(), uuid.New(), uuid.New()
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "leaves" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "requester_id", "leave_type_id", "start_date", "end_date", "total_days", "status"}).
			AddRow(id.String(), requester.String(), uuid.NewString(), start, start.AddDate(0, 0, 1), 2, "pending"))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "department_id"}).AddRow(requester.String(), deptID.String()))
	mock.ExpectQuery(`SELECT \* FROM "leave_approvals" WHERE leave_id = \$1 ORDER BY sequence ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "leave_id", "sequence"}))

	l, err := repo.FindByIDForUpdate(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, l.Status)
	require.NotNil(t, l.RequesterDepartment())
	assert.Equal(t, deptID, *l.RequesterDepartment())
	assert.Empty(t, l.Approvals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	guarded := `UPDATE "leaves" SET .+ WHERE id = \$\d+ AND status = \$\d+`

	t.Run("row still in the expected status", func(t *testing.T) {
		db, mock := testutil.NewMockDB(t)
		repo := leave.NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(guarded).
			WithArgs("approved", sqlmock.AnyArg(), id.String(), "pending").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		rows, err := repo.UpdateStatus(ctx, id, leave.StatusPending, leave.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("row already moved on", func(t *testing.T) {
		db, mock := testutil.NewMockDB(t)
		repo := leave.NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(guarded).
			WithArgs("rejected", sqlmock.AnyArg(), id.String(), "pending").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		rows, err := repo.UpdateStatus(ctx, id, leave.StatusPending, leave.StatusRejected)
		require.NoError(t, err)
		assert.Zero(t, rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_LockRequester(t *testing.T) {
	ctx := context.Background()
	db, mock := testutil.NewMockDB(t)
	repo := leave.NewRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 AND archived_at IS NULL .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(userID.String(), "emp@example.com"))

	u, err := repo.LockRequester(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "emp@example.com", u.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
