package report

import (
	"context"
	"testing"
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/balance"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/daycount"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/department"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/leave"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/leavetype"
	reporterrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/report/errors"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/testutil"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type reportFixture struct {
	svc      *service
	db       *gorm.DB
	eng      uuid.UUID
	sales    uuid.UUID
	employee auth.Identity
	peer     auth.Identity
	manager  auth.Identity
	seller   auth.Identity
	admin    auth.Identity
	drifter  auth.Identity
	annual   uuid.UUID
	sick     uuid.UUID
	ids      map[string]uuid.UUID
}

func day(v string) time.Time {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		panic(err)
	}
	return daycount.Date(t)
}

func newReportFixture(t *testing.T) reportFixture {
	t.Helper()
	db := testutil.NewSQLiteDB(t,
		&department.Department{},
		&user.User{},
		&leavetype.LeaveType{},
		&balance.LeaveBalance{},
		&leave.Leave{},
		&leave.Approval{},
	)

	f := reportFixture{
		db:     db,
		eng:    uuid.New(),
		sales:  uuid.New(),
		annual: uuid.New(),
		sick:   uuid.New(),
		ids:    map[string]uuid.UUID{},
	}
	require.NoError(t, db.Create(&[]department.Department{
		{ID: f.eng, Name: "Engineering"},
		{ID: f.sales, Name: "Sales"},
	}).Error)

	newUser := func(role auth.Role, dept *uuid.UUID, first, last string) auth.Identity {
		u := user.User{
			ID: uuid.New(), Email: first + "@example.com", PasswordHash: "x",
			FirstName: first, LastName: last, Role: string(role), DepartmentID: dept, IsActive: true,
		}
		require.NoError(t, db.Create(&u).Error)
		return auth.Identity{UserID: u.ID, Role: role, DepartmentID: dept}
	}
	f.employee = newUser(auth.RoleEmployee, &f.eng, "emma", "stone")
	f.peer = newUser(auth.RoleEmployee, &f.eng, "paul", "reed")
	f.manager = newUser(auth.RoleManager, &f.eng, "mia", "lane")
	f.seller = newUser(auth.RoleEmployee, &f.sales, "sam", "cole")
	f.admin = newUser(auth.RoleAdmin, nil, "ada", "hart")
	f.drifter = newUser(auth.RoleManager, nil, "dan", "moss")

	require.NoError(t, db.Create(&[]leavetype.LeaveType{
		{ID: f.annual, Name: "Annual Leave", DefaultDaysPerYear: 20, RequiresApproval: true, DayCountingRule: daycount.BusinessDays, IsActive: true},
		{ID: f.sick, Name: "Sick Leave", DefaultDaysPerYear: 10, RequiresApproval: true, DayCountingRule: daycount.BusinessDays, IsActive: true},
	}).Error)

	add := func(key string, who auth.Identity, typeID uuid.UUID, start, end string, days int, status leave.Status) uuid.UUID {
		l := leave.Leave{
			ID: uuid.New(), RequesterID: who.UserID, LeaveTypeID: typeID,
			StartDate: day(start), EndDate: day(end), TotalDays: days, Reason: key, Status: status,
		}
		require.NoError(t, db.Create(&l).Error)
		f.ids[key] = l.ID
		return l.ID
	}
	june := add("june", f.employee, f.annual, "2024-06-03", "2024-06-07", 5, leave.StatusApproved)
	add("sick", f.employee, f.sick, "2024-06-20", "2024-06-21", 2, leave.StatusApproved)
	add("may", f.employee, f.annual, "2024-05-13", "2024-05-14", 2, leave.StatusPending)
	add("refused", f.peer, f.annual, "2024-06-05", "2024-06-06", 2, leave.StatusRejected)
	add("awaiting", f.peer, f.annual, "2024-06-10", "2024-06-12", 3, leave.StatusPendingHR)
	add("sales", f.seller, f.annual, "2024-06-04", "2024-06-05", 2, leave.StatusApproved)
	add("autumn", f.employee, f.annual, "2023-11-27", "2023-11-28", 2, leave.StatusApproved)
	add("dropped", f.employee, f.annual, "2024-07-01", "2024-07-05", 5, leave.StatusCancelled)

	require.NoError(t, db.Create(&leave.Approval{
		ID: uuid.New(), LeaveID: june, Sequence: 1, Step: leave.StepManager, ActorID: f.manager.UserID,
		Decision: leave.DecisionApproved, Comment: "enjoy", DecidedAt: time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC),
	}).Error)

	require.NoError(t, db.Create(&[]balance.LeaveBalance{
		{ID: uuid.New(), UserID: f.employee.UserID, LeaveTypeID: f.annual, Year: 2024, Allocated: 20, Used: 5, Pending: 2},
		{ID: uuid.New(), UserID: f.employee.UserID, LeaveTypeID: f.sick, Year: 2024, Allocated: 10, Used: 2},
	}).Error)

	svc := NewService(
		NewRepository(db),
		user.NewRepository(db),
		department.NewRepository(db),
		balance.NewRepository(db),
	).(*service)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC) }
	f.svc = svc
	return f
}

func reasons(resp []leave.LeaveResponse) []string {
	out := make([]string, len(resp))
	for i, r := range resp {
		out[i] = r.Reason
	}
	return out
}

func TestService_Calendar(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()
	june := CalendarQuery{StartDate: "2024-06-01", EndDate: "2024-06-30"}

	t.Run("scoped by role and ordered by start", func(t *testing.T) {
		tests := []struct {
			name   string
			actor  auth.Identity
			query  CalendarQuery
			expect []string
		}{
			{"admin sees all", f.admin, june, []string{"june", "sales", "sick"}},
			{"admin filters department", f.admin, CalendarQuery{StartDate: "2024-06-01", EndDate: "2024-06-30", DepartmentID: f.sales.String()}, []string{"sales"}},
			{"manager sees department", f.manager, june, []string{"june", "sick"}},
			{"manager cannot widen department", f.manager, CalendarQuery{StartDate: "2024-06-01", EndDate: "2024-06-30", DepartmentID: f.sales.String()}, []string{"june", "sick"}},
			{"employee sees own", f.seller, june, []string{"sales"}},
			{"manager without department", f.drifter, june, []string{}},
			{"inclusive end date", f.admin, CalendarQuery{StartDate: "2024-06-07", EndDate: "2024-06-07"}, []string{"june"}},
			{"spanning leave", f.admin, CalendarQuery{StartDate: "2024-06-04", EndDate: "2024-06-04"}, []string{"june", "sales"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resp, err := f.svc.Calendar(ctx, tt.actor, tt.query)
				require.NoError(t, err)
				assert.Equal(t, tt.expect, reasons(resp))
			})
		}
	})

	t.Run("input errors", func(t *testing.T) {
		tests := []struct {
			name  string
			query CalendarQuery
			err   error
		}{
			{"missing range", CalendarQuery{StartDate: "2024-06-01"}, reporterrors.ErrDateRangeRequired},
			{"bad date", CalendarQuery{StartDate: "06/01/2024", EndDate: "2024-06-30"}, reporterrors.ErrInvalidDateFormat},
			{"reversed", CalendarQuery{StartDate: "2024-06-30", EndDate: "2024-06-01"}, reporterrors.ErrInvalidDateRange},
			{"bad department", CalendarQuery{StartDate: "2024-06-01", EndDate: "2024-06-30", DepartmentID: "eng"}, reporterrors.ErrInvalidDepartmentID},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := f.svc.Calendar(ctx, f.admin, tt.query)
				assert.ErrorIs(t, err, tt.err)
			})
		}
	})
}

func TestService_Upcoming(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Upcoming(ctx, f.manager, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"sick"}, reasons(resp))

	resp, err = f.svc.Upcoming(ctx, f.seller, 30)
	require.NoError(t, err)
	assert.Empty(t, resp)

	resp, err = f.svc.Upcoming(ctx, f.admin, 3)
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestService_Stats(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	t.Run("admin over the last six months", func(t *testing.T) {
		stats, err := f.svc.Stats(ctx, f.admin, RangeQuery{})
		require.NoError(t, err)

		assert.Equal(t, 7, stats.Total)
		assert.Equal(t, 3, stats.Approved)
		assert.Equal(t, 1, stats.Pending)
		assert.Equal(t, 1, stats.PendingHR)
		assert.Equal(t, 1, stats.Rejected)
		assert.Equal(t, 9, stats.TotalDays)

		assert.Equal(t, TypeStat{Count: 6, Days: 7}, stats.ByType["Annual Leave"])
		assert.Equal(t, TypeStat{Count: 1, Days: 2}, stats.ByType["Sick Leave"])

		assert.Equal(t, MonthStat{Approved: 3, Pending: 1, Rejected: 1, TotalDays: 9}, stats.ByMonth["2024-06"])
		assert.Equal(t, MonthStat{Pending: 1}, stats.ByMonth["2024-05"])
		assert.Equal(t, MonthStat{}, stats.ByMonth["2024-07"])
		assert.NotContains(t, stats.ByMonth, "2023-11")
	})

	t.Run("manager sees department", func(t *testing.T) {
		stats, err := f.svc.Stats(ctx, f.manager, RangeQuery{})
		require.NoError(t, err)
		assert.Equal(t, 6, stats.Total)
		assert.Equal(t, 2, stats.Approved)
		assert.Equal(t, 7, stats.TotalDays)
	})

	t.Run("employee sees own", func(t *testing.T) {
		stats, err := f.svc.Stats(ctx, f.employee, RangeQuery{})
		require.NoError(t, err)
		assert.Equal(t, 4, stats.Total)
		assert.Equal(t, 2, stats.Approved)
		assert.Equal(t, 1, stats.Pending)
	})

	t.Run("explicit range", func(t *testing.T) {
		stats, err := f.svc.Stats(ctx, f.admin, RangeQuery{StartDate: "2023-11-01", EndDate: "2023-11-30"})
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Total)
		assert.Equal(t, 2, stats.TotalDays)
	})

	t.Run("manager without department", func(t *testing.T) {
		stats, err := f.svc.Stats(ctx, f.drifter, RangeQuery{})
		require.NoError(t, err)
		assert.Zero(t, stats.Total)
		assert.NotNil(t, stats.ByType)
	})
}

func TestService_AnnualReport(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	report, err := f.svc.AnnualReport(ctx, f.admin, f.employee.UserID.String(), 2024)
	require.NoError(t, err)

	assert.Equal(t, EmployeeInfo{Name: "emma stone", Email: "emma@example.com", Department: "Engineering"}, report.Employee)
	assert.Equal(t, 2024, report.Year)
	assert.Equal(t, AnnualSummary{TotalLeavesRequested: 4, TotalDaysTaken: 7, TotalDaysPending: 2}, report.Summary)

	annual := report.LeavesByType["Annual Leave"]
	require.NotNil(t, annual)
	assert.Equal(t, 12, annual.TotalDays)
	assert.Equal(t, 1, annual.Approved)
	assert.Equal(t, 1, annual.Pending)
	assert.Equal(t, 1, annual.Cancelled)
	assert.Len(t, annual.Leaves, 3)
	assert.Equal(t, "2024-05-13", annual.Leaves[0].StartDate)

	sick := report.LeavesByType["Sick Leave"]
	require.NotNil(t, sick)
	assert.Equal(t, 2, sick.TotalDays)

	assert.Equal(t, []BalanceLine{
		{LeaveType: "Annual Leave", Allocated: 20, Used: 5, Pending: 2, Available: 13},
		{LeaveType: "Sick Leave", Allocated: 10, Used: 2, Available: 8},
	}, report.Balances)

	t.Run("no department", func(t *testing.T) {
		report, err := f.svc.AnnualReport(ctx, f.admin, f.admin.UserID.String(), 2024)
		require.NoError(t, err)
		assert.Equal(t, "N/A", report.Employee.Department)
		assert.Zero(t, report.Summary.TotalLeavesRequested)
		assert.Empty(t, report.Balances)
	})

	t.Run("manager of the same department", func(t *testing.T) {
		_, err := f.svc.AnnualReport(ctx, f.manager, f.employee.UserID.String(), 2024)
		assert.NoError(t, err)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name   string
			actor  auth.Identity
			userID string
			year   int
			err    error
		}{
			{"manager without department", f.drifter, f.employee.UserID.String(), 2024, reporterrors.ErrOutOfScope},
			{"unknown user", f.admin, uuid.NewString(), 2024, reporterrors.ErrUserNotFound},
			{"bad user id", f.admin, "emma", 2024, reporterrors.ErrInvalidUserID},
			{"bad year", f.admin, f.employee.UserID.String(), 0, reporterrors.ErrInvalidYear},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := f.svc.AnnualReport(ctx, tt.actor, tt.userID, tt.year)
				assert.ErrorIs(t, err, tt.err)
			})
		}
	})
}

func TestService_DepartmentAnalytics(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	out, err := f.svc.DepartmentAnalytics(ctx, f.eng.String(), RangeQuery{})
	require.NoError(t, err)

	assert.Equal(t, "Engineering", out.Department)
	assert.Equal(t, "Last 12 months", out.DateRange)
	assert.Equal(t, 7, out.Summary.TotalLeaves)
	assert.Equal(t, 21, out.Summary.TotalDays)
	assert.Equal(t, 3, out.Summary.Approved)
	assert.Equal(t, 2, out.Summary.Pending)
	assert.Equal(t, 1, out.Summary.Rejected)
	assert.True(t, decimal.NewFromInt(75).Equal(out.Summary.ApprovalRate), out.Summary.ApprovalRate.String())

	assert.Equal(t, map[string]int{"Annual Leave": 19, "Sick Leave": 2}, out.TypeDistribution)
	assert.Equal(t, Utilization{Approved: 9, Pending: 2}, out.EmployeeUtilization["emma stone"])
	assert.Equal(t, Utilization{Pending: 3, Rejected: 2}, out.EmployeeUtilization["paul reed"])
	assert.Equal(t, MonthStat{Approved: 1, TotalDays: 2}, out.MonthlyTrends["2023-11"])
	assert.Equal(t, MonthStat{TotalDays: 5}, out.MonthlyTrends["2024-07"])

	t.Run("explicit range", func(t *testing.T) {
		out, err := f.svc.DepartmentAnalytics(ctx, f.eng.String(), RangeQuery{StartDate: "2024-06-01", EndDate: "2024-06-30"})
		require.NoError(t, err)
		assert.Equal(t, "2024-06-01 to 2024-06-30", out.DateRange)
		assert.Equal(t, 4, out.Summary.TotalLeaves)
	})

	t.Run("unknown department", func(t *testing.T) {
		_, err := f.svc.DepartmentAnalytics(ctx, uuid.NewString(), RangeQuery{})
		assert.ErrorIs(t, err, reporterrors.ErrDepartmentNotFound)
	})

	t.Run("bad department id", func(t *testing.T) {
		_, err := f.svc.DepartmentAnalytics(ctx, "eng", RangeQuery{})
		assert.ErrorIs(t, err, reporterrors.ErrInvalidDepartmentID)
	})
}

func TestApprovalRate(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(approvalRate(0, 0)))
	assert.Equal(t, "66.7", approvalRate(2, 1).String())
	assert.Equal(t, "100", approvalRate(4, 0).String())
}

func TestService_ExportRows(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	t.Run("admin exports everything", func(t *testing.T) {
		res, err := f.svc.ExportRows(ctx, f.admin, ExportQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(8), res.Total)
		assert.False(t, res.Truncated)
		require.Len(t, res.Rows, 8)

		byID := map[string]ExportRow{}
		for _, r := range res.Rows {
			byID[r.LeaveID] = r
		}
		june := byID[f.ids["june"].String()]
		assert.Equal(t, "emma stone", june.Employee)
		assert.Equal(t, "Engineering", june.Department)
		assert.Equal(t, "Annual Leave", june.LeaveType)
		assert.Equal(t, "mia lane", june.Reviewer)
		assert.Equal(t, "enjoy", june.ReviewComment)
		assert.Equal(t, "2024-05-20 09:30", june.ReviewedOn)

		pending := byID[f.ids["may"].String()]
		assert.Equal(t, "N/A", pending.Reviewer)
		assert.Equal(t, "N/A", pending.ReviewedOn)
	})

	t.Run("filters", func(t *testing.T) {
		res, err := f.svc.ExportRows(ctx, f.admin, ExportQuery{Status: "approved", DepartmentID: f.sales.String()})
		require.NoError(t, err)
		require.Len(t, res.Rows, 1)
		assert.Equal(t, "sam cole", res.Rows[0].Employee)

		res, err = f.svc.ExportRows(ctx, f.manager, ExportQuery{Status: "approved", DepartmentID: f.sales.String()})
		require.NoError(t, err)
		assert.Len(t, res.Rows, 3)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := f.svc.ExportRows(ctx, f.admin, ExportQuery{Status: "archived"})
		assert.ErrorIs(t, err, reporterrors.ErrInvalidStatus)

		_, err = f.svc.ExportRows(ctx, f.admin, ExportQuery{LeaveTypeID: "annual"})
		assert.ErrorIs(t, err, reporterrors.ErrInvalidLeaveTypeID)

		_, err = f.svc.ExportRows(ctx, f.admin, ExportQuery{StartDate: "2030-01-01"})
		assert.ErrorIs(t, err, reporterrors.ErrNoExportData)

		_, err = f.svc.ExportRows(ctx, f.drifter, ExportQuery{})
		assert.ErrorIs(t, err, reporterrors.ErrNoExportData)
	})
}
