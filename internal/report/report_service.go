package report

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/balance"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/daycount"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/department"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/leave"
	reporterrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/report/errors"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/contextutil"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout    = "2006-01-02"
	monthLayout   = "2006-01"
	stampLayout   = "2006-01-02 15:04"
	notAvailable  = "N/A"
	upcomingLimit = 10
	defaultAhead  = 30
	maxAhead      = 365
	exportLimit   = 5000
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type UserLookup interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

type DepartmentLookup interface {
	FindByID(ctx context.Context, id string) (*department.Department, error)
}

type BalanceLookup interface {
	ListByUserYear(ctx context.Context, userID string, year int) ([]balance.LeaveBalance, error)
}

type Service interface {
	Calendar(ctx context.Context, actor auth.Identity, q CalendarQuery) ([]leave.LeaveResponse, error)
	Upcoming(ctx context.Context, actor auth.Identity, days int) ([]leave.LeaveResponse, error)
	Stats(ctx context.Context, actor auth.Identity, q RangeQuery) (Stats, error)
	AnnualReport(ctx context.Context, actor auth.Identity, userID string, year int) (AnnualReport, error)
	DepartmentAnalytics(ctx context.Context, departmentID string, q RangeQuery) (DepartmentAnalytics, error)
	ExportRows(ctx context.Context, actor auth.Identity, q ExportQuery) (ExportResult, error)
}

type service struct {
	repo        Repository
	users       UserLookup
	departments DepartmentLookup
	balances    BalanceLookup
	logger      *zap.Logger
	now         func() time.Time
}

func NewService(
	repo Repository,
	users UserLookup,
	departments DepartmentLookup,
	balances BalanceLookup,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		repo:        repo,
		users:       users,
		departments: departments,
		balances:    balances,
		logger:      l,
		now:         time.Now,
	}
}

func (s *service) today() time.Time {
	return daycount.Date(s.now())
}

func (s *service) Calendar(ctx context.Context, actor auth.Identity, q CalendarQuery) ([]leave.LeaveResponse, error) {
	if q.StartDate == "" || q.EndDate == "" {
		return nil, reporterrors.ErrDateRangeRequired
	}
	from, to, err := parseRange(q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}
	dept, err := parseOptionalID(q.DepartmentID, reporterrors.ErrInvalidDepartmentID)
	if err != nil {
		return nil, err
	}

	scope := ScopeFor(actor, dept)
	if scope.None {
		return []leave.LeaveResponse{}, nil
	}

	leaves, err := s.repo.ApprovedIntersecting(ctx, scope, *from, *to)
	if err != nil {
		return nil, err
	}
	return leave.ToResponses(leaves), nil
}

// Upcoming lists approved leaves starting within the next days days.
func (s *service) Upcoming(ctx context.Context, actor auth.Identity, days int) ([]leave.LeaveResponse, error) {
	if days <= 0 {
		days = defaultAhead
	}
	if days > maxAhead {
		days = maxAhead
	}

	scope := ScopeFor(actor, nil)
	if scope.None {
		return []leave.LeaveResponse{}, nil
	}

	from := s.today()
	leaves, err := s.repo.ApprovedStarting(ctx, scope, from, from.AddDate(0, 0, days), upcomingLimit)
	if err != nil {
		return nil, err
	}
	return leave.ToResponses(leaves), nil
}

// Stats aggregates by start date. Without bounds it covers the last six
// months.
func (s *service) Stats(ctx context.Context, actor auth.Identity, q RangeQuery) (Stats, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	from, to, err := parseOptionalRange(q.StartDate, q.EndDate)
	if err != nil {
		return Stats{}, err
	}
	if from == nil && to == nil {
		d := s.today().AddDate(0, -6, 0)
		from = &d
	}

	stats := Stats{ByType: map[string]TypeStat{}, ByMonth: map[string]MonthStat{}}

	scope := ScopeFor(actor, nil)
	if scope.None {
		return stats, nil
	}

	leaves, err := s.repo.Leaves(ctx, scope, LeaveFilter{StartFrom: from, StartTo: to})
	if err != nil {
		log.Error("load leaves for stats failed", zap.Error(err))
		return Stats{}, err
	}

	for _, l := range leaves {
		stats.Total++
		switch l.Status {
		case leave.StatusApproved:
			stats.Approved++
			stats.TotalDays += l.TotalDays
		case leave.StatusPending:
			stats.Pending++
		case leave.StatusPendingHR:
			stats.PendingHR++
		case leave.StatusRejected:
			stats.Rejected++
		}

		name := leaveTypeName(l)
		ts := stats.ByType[name]
		ts.Count++
		if l.Status == leave.StatusApproved {
			ts.Days += l.TotalDays
		}
		stats.ByType[name] = ts

		month := l.StartDate.Format(monthLayout)
		ms := stats.ByMonth[month]
		switch l.Status {
		case leave.StatusApproved:
			ms.Approved++
			ms.TotalDays += l.TotalDays
		case leave.StatusPending, leave.StatusPendingHR:
			ms.Pending++
		case leave.StatusRejected:
			ms.Rejected++
		}
		stats.ByMonth[month] = ms
	}
	return stats, nil
}

// AnnualReport covers leaves starting in year. Managers may only report on
// members of their own department.
func (s *service) AnnualReport(ctx context.Context, actor auth.Identity, userID string, year int) (AnnualReport, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return AnnualReport{}, reporterrors.ErrInvalidUserID
	}
	if year < 1 || year > 9999 {
		return AnnualReport{}, reporterrors.ErrInvalidYear
	}

	u, err := s.users.FindByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AnnualReport{}, reporterrors.ErrUserNotFound
		}
		return AnnualReport{}, err
	}
	if actor.IsManager() && !actor.SameDepartment(u.DepartmentID) {
		return AnnualReport{}, reporterrors.ErrOutOfScope
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	leaves, err := s.repo.Leaves(ctx, Scope{RequesterID: &id}, LeaveFilter{StartFrom: &from, StartTo: &to})
	if err != nil {
		return AnnualReport{}, err
	}
	balances, err := s.balances.ListByUserYear(ctx, id.String(), year)
	if err != nil {
		return AnnualReport{}, err
	}

	report := AnnualReport{
		Employee: EmployeeInfo{
			Name:       u.FullName(),
			Email:      u.Email,
			Department: notAvailable,
		},
		Year:         year,
		Summary:      AnnualSummary{TotalLeavesRequested: len(leaves)},
		LeavesByType: map[string]*AnnualTypeGroup{},
		Balances:     make([]BalanceLine, len(balances)),
	}
	if u.Department != nil {
		report.Employee.Department = u.Department.Name
	}

	for _, l := range leaves {
		name := leaveTypeName(l)
		group, ok := report.LeavesByType[name]
		if !ok {
			group = &AnnualTypeGroup{Leaves: []AnnualLeave{}}
			report.LeavesByType[name] = group
		}
		group.TotalDays += l.TotalDays
		group.Leaves = append(group.Leaves, AnnualLeave{
			StartDate: l.StartDate.Format(dateLayout),
			EndDate:   l.EndDate.Format(dateLayout),
			Days:      l.TotalDays,
			Status:    string(l.Status),
			Reason:    l.Reason,
		})

		switch l.Status {
		case leave.StatusApproved:
			group.Approved++
			report.Summary.TotalDaysTaken += l.TotalDays
		case leave.StatusPending, leave.StatusPendingHR:
			group.Pending++
			report.Summary.TotalDaysPending += l.TotalDays
		case leave.StatusRejected:
			group.Rejected++
		case leave.StatusCancelled:
			group.Cancelled++
		}
	}

	for i, b := range balances {
		report.Balances[i] = BalanceLine{
			LeaveType: b.LeaveTypeName,
			Allocated: b.Allocated,
			Used:      b.Used,
			Pending:   b.Pending,
			Available: b.Remaining(),
		}
	}
	return report, nil
}

// DepartmentAnalytics defaults to the last twelve months when no bound is
// given.
func (s *service) DepartmentAnalytics(ctx context.Context, departmentID string, q RangeQuery) (DepartmentAnalytics, error) {
	id, err := uuid.Parse(departmentID)
	if err != nil {
		return DepartmentAnalytics{}, reporterrors.ErrInvalidDepartmentID
	}
	from, to, err := parseOptionalRange(q.StartDate, q.EndDate)
	if err != nil {
		return DepartmentAnalytics{}, err
	}

	label := "Last 12 months"
	switch {
	case from != nil && to != nil:
		label = q.StartDate + " to " + q.EndDate
	case from == nil && to == nil:
		d := s.today().AddDate(-1, 0, 0)
		from = &d
	}

	dept, err := s.departments.FindByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentAnalytics{}, reporterrors.ErrDepartmentNotFound
		}
		return DepartmentAnalytics{}, err
	}

	leaves, err := s.repo.Leaves(ctx, Scope{DepartmentID: &id}, LeaveFilter{StartFrom: from, StartTo: to})
	if err != nil {
		return DepartmentAnalytics{}, err
	}

	out := DepartmentAnalytics{
		Department:          dept.Name,
		DateRange:           label,
		Summary:             DepartmentSummary{TotalLeaves: len(leaves), ApprovalRate: decimal.Zero},
		MonthlyTrends:       map[string]MonthStat{},
		TypeDistribution:    map[string]int{},
		EmployeeUtilization: map[string]Utilization{},
	}

	for _, l := range leaves {
		out.Summary.TotalDays += l.TotalDays
		out.TypeDistribution[leaveTypeName(l)] += l.TotalDays

		month := l.StartDate.Format(monthLayout)
		ms := out.MonthlyTrends[month]
		ms.TotalDays += l.TotalDays

		name := notAvailable
		if l.Requester != nil {
			name = l.Requester.FullName()
		}
		ut := out.EmployeeUtilization[name]

		switch l.Status {
		case leave.StatusApproved:
			out.Summary.Approved++
			ms.Approved++
			ut.Approved += l.TotalDays
		case leave.StatusPending, leave.StatusPendingHR:
			out.Summary.Pending++
			ms.Pending++
			ut.Pending += l.TotalDays
		case leave.StatusRejected:
			out.Summary.Rejected++
			ms.Rejected++
			ut.Rejected += l.TotalDays
		}
		out.MonthlyTrends[month] = ms
		out.EmployeeUtilization[name] = ut
	}

	out.Summary.ApprovalRate = approvalRate(out.Summary.Approved, out.Summary.Rejected)
	return out, nil
}

// approvalRate is the share of decided leaves that were approved, as a
// percentage with one decimal place.
func approvalRate(approved, rejected int) decimal.Decimal {
	decided := approved + rejected
	if decided == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(approved)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(decided))).
		Round(1)
}

// ExportRows flattens at most exportLimit leaves. Truncated reports whether
// more matched.
func (s *service) ExportRows(ctx context.Context, actor auth.Identity, q ExportQuery) (ExportResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	var filter LeaveFilter
	if q.Status != "" {
		st := leave.Status(q.Status)
		if !st.Valid() {
			return ExportResult{}, reporterrors.ErrInvalidStatus
		}
		filter.Status = st
	}
	typeID, err := parseOptionalID(q.LeaveTypeID, reporterrors.ErrInvalidLeaveTypeID)
	if err != nil {
		return ExportResult{}, err
	}
	filter.LeaveTypeID = typeID
	dept, err := parseOptionalID(q.DepartmentID, reporterrors.ErrInvalidDepartmentID)
	if err != nil {
		return ExportResult{}, err
	}
	filter.StartFrom, filter.StartTo, err = parseOptionalRange(q.StartDate, q.EndDate)
	if err != nil {
		return ExportResult{}, err
	}

	scope := ScopeFor(actor, dept)
	if scope.None {
		return ExportResult{}, reporterrors.ErrNoExportData
	}

	leaves, total, err := s.repo.Export(ctx, scope, filter, exportLimit)
	if err != nil {
		return ExportResult{}, err
	}
	if total == 0 {
		return ExportResult{}, reporterrors.ErrNoExportData
	}

	result := ExportResult{
		Rows:      make([]ExportRow, len(leaves)),
		Total:     total,
		Truncated: total > exportLimit,
	}
	for i, l := range leaves {
		result.Rows[i] = exportRow(l)
	}
	if result.Truncated {
		log.Warn("export truncated", zap.Int64("total", total), zap.Int("limit", exportLimit))
	}
	return result, nil
}

func exportRow(l leave.Leave) ExportRow {
	row := ExportRow{
		LeaveID:       l.ID.String(),
		Employee:      notAvailable,
		Email:         notAvailable,
		Department:    notAvailable,
		LeaveType:     leaveTypeName(l),
		StartDate:     l.StartDate.Format(dateLayout),
		EndDate:       l.EndDate.Format(dateLayout),
		TotalDays:     l.TotalDays,
		Status:        string(l.Status),
		Reason:        l.Reason,
		Reviewer:      notAvailable,
		ReviewComment: notAvailable,
		RequestedOn:   l.CreatedAt.UTC().Format(stampLayout),
		ReviewedOn:    notAvailable,
	}
	if r := l.Requester; r != nil {
		row.Employee = r.FullName()
		row.Email = r.Email
		if r.Department != nil {
			row.Department = r.Department.Name
		}
	}
	if a := l.FinalEntry(); a != nil {
		if a.Actor != nil {
			row.Reviewer = a.Actor.FullName()
		}
		if strings.TrimSpace(a.Comment) != "" {
			row.ReviewComment = a.Comment
		}
		row.ReviewedOn = a.DecidedAt.UTC().Format(stampLayout)
	}
	return row
}

func leaveTypeName(l leave.Leave) string {
	if l.LeaveType == nil {
		return notAvailable
	}
	return l.LeaveType.Name
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, reporterrors.ErrInvalidDateFormat
	}
	return daycount.Date(t), nil
}

func parseRange(start, end string) (*time.Time, *time.Time, error) {
	from, err := parseDate(start)
	if err != nil {
		return nil, nil, err
	}
	to, err := parseDate(end)
	if err != nil {
		return nil, nil, err
	}
	if to.Before(from) {
		return nil, nil, reporterrors.ErrInvalidDateRange
	}
	return &from, &to, nil
}

// parseOptionalRange accepts either bound on its own.
func parseOptionalRange(start, end string) (*time.Time, *time.Time, error) {
	if start != "" && end != "" {
		return parseRange(start, end)
	}
	var from, to *time.Time
	if start != "" {
		d, err := parseDate(start)
		if err != nil {
			return nil, nil, err
		}
		from = &d
	}
	if end != "" {
		d, err := parseDate(end)
		if err != nil {
			return nil, nil, err
		}
		to = &d
	}
	return from, to, nil
}

func parseOptionalID(v string, invalid error) (*uuid.UUID, error) {
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, invalid
	}
	return &id, nil
}
