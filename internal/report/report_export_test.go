package report_test

import (
	"context"
	"testing"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/leave"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/report"
	reporterrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/report/errors"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/user"

	reportMock "github.com/adeleke-taiwo/HR-LeaveFlow/internal/report/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service  report.Service
	repo     *reportMock.MockRepository
	users    *reportMock.MockUserLookup
	balances *reportMock.MockBalanceLookup
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	deps := &serviceDeps{
		repo:     reportMock.NewMockRepository(ctrl),
		users:    reportMock.NewMockUserLookup(ctrl),
		balances: reportMock.NewMockBalanceLookup(ctrl),
	}
	deps.service = report.NewService(deps.repo, deps.users, reportMock.NewMockDepartmentLookup(ctrl), deps.balances)
	return deps
}

func TestService_ExportRowsTruncates(t *testing.T) {
	deps := setupServiceTest(t)
	admin := auth.Identity{UserID: uuid.New(), Role: auth.RoleAdmin}

	deps.repo.EXPECT().
		Export(gomock.Any(), gomock.Any(), gomock.Any(), 5000).
		Return([]leave.Leave{{ID: uuid.New(), Status: leave.StatusPending}}, int64(6200), nil)

	res, err := deps.service.ExportRows(context.Background(), admin, report.ExportQuery{})
	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.Equal(t, int64(6200), res.Total)
	assert.Equal(t, "N/A", res.Rows[0].Employee)
}

func TestService_AnnualReportLookups(t *testing.T) {
	ctx := context.Background()
	eng, sales := uuid.New(), uuid.New()

	t.Run("unknown user", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()

		deps.users.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Leaves(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.AnnualReport(ctx, auth.Identity{Role: auth.RoleAdmin}, id, 2024)
		assert.ErrorIs(t, err, reporterrors.ErrUserNotFound)
	})

	t.Run("manager outside the department", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.users.EXPECT().FindByID(ctx, id.String()).Return(&user.User{ID: id, DepartmentID: &sales}, nil)
		deps.balances.EXPECT().ListByUserYear(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		manager := auth.Identity{UserID: uuid.New(), Role: auth.RoleManager, DepartmentID: &eng}
		_, err := deps.service.AnnualReport(ctx, manager, id.String(), 2024)
		assert.ErrorIs(t, err, reporterrors.ErrOutOfScope)
	})

	t.Run("empty year", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.users.EXPECT().
			FindByID(ctx, id.String()).
			Return(&user.User{ID: id, FirstName: "Emma", LastName: "Stone", Email: "emma@example.com"}, nil)
		deps.repo.EXPECT().Leaves(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		deps.balances.EXPECT().ListByUserYear(ctx, id.String(), 2024).Return(nil, nil)

		got, err := deps.service.AnnualReport(ctx, auth.Identity{Role: auth.RoleAdmin}, id.String(), 2024)
		require.NoError(t, err)
		assert.Equal(t, "emma@example.com", got.Employee.Email)
		assert.Equal(t, "N/A", got.Employee.Department)
		assert.Zero(t, got.Summary.TotalLeavesRequested)
		assert.Empty(t, got.Balances)
	})
}
