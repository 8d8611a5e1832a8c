package report

import "github.com/shopspring/decimal"

type CalendarQuery struct {
	StartDate    string `form:"startDate"`
	EndDate      string `form:"endDate"`
	DepartmentID string `form:"departmentId"`
}

type RangeQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

type ExportQuery struct {
	Status       string `form:"status"`
	LeaveTypeID  string `form:"leaveTypeId"`
	DepartmentID string `form:"departmentId"`
	StartDate    string `form:"startDate"`
	EndDate      string `form:"endDate"`
}

type TypeStat struct {
	Count int `json:"count"`
	Days  int `json:"days"`
}

type MonthStat struct {
	Approved  int `json:"approved"`
	Pending   int `json:"pending"`
	Rejected  int `json:"rejected"`
	TotalDays int `json:"totalDays"`
}

type Stats struct {
	Total     int                  `json:"total"`
	Approved  int                  `json:"approved"`
	Pending   int                  `json:"pending"`
	Rejected  int                  `json:"rejected"`
	PendingHR int                  `json:"pendingHR"`
	TotalDays int                  `json:"totalDays"`
	ByType    map[string]TypeStat  `json:"byType"`
	ByMonth   map[string]MonthStat `json:"byMonth"`
}

type EmployeeInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type AnnualSummary struct {
	TotalLeavesRequested int `json:"totalLeavesRequested"`
	TotalDaysTaken       int `json:"totalDaysTaken"`
	TotalDaysPending     int `json:"totalDaysPending"`
}

type AnnualLeave struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Days      int    `json:"days"`
	Status    string `json:"status"`
	Reason    string `json:"reason"`
}

type AnnualTypeGroup struct {
	TotalDays int           `json:"totalDays"`
	Approved  int           `json:"approved"`
	Pending   int           `json:"pending"`
	Rejected  int           `json:"rejected"`
	Cancelled int           `json:"cancelled"`
	Leaves    []AnnualLeave `json:"leaves"`
}

type BalanceLine struct {
	LeaveType string `json:"leaveType"`
	Allocated int    `json:"allocated"`
	Used      int    `json:"used"`
	Pending   int    `json:"pending"`
	Available int    `json:"available"`
}

type AnnualReport struct {
	Employee     EmployeeInfo                `json:"employee"`
	Year         int                         `json:"year"`
	Summary      AnnualSummary               `json:"summary"`
	LeavesByType map[string]*AnnualTypeGroup `json:"leavesByType"`
	Balances     []BalanceLine               `json:"balances"`
}

type DepartmentSummary struct {
	TotalLeaves  int             `json:"totalLeaves"`
	TotalDays    int             `json:"totalDays"`
	Approved     int             `json:"approved"`
	Pending      int             `json:"pending"`
	Rejected     int             `json:"rejected"`
	ApprovalRate decimal.Decimal `json:"approvalRate"`
}

type Utilization struct {
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
}

type DepartmentAnalytics struct {
	Department          string                 `json:"department"`
	DateRange           string                 `json:"dateRange"`
	Summary             DepartmentSummary      `json:"summary"`
	MonthlyTrends       map[string]MonthStat   `json:"monthlyTrends"`
	TypeDistribution    map[string]int         `json:"typeDistribution"`
	EmployeeUtilization map[string]Utilization `json:"employeeUtilization"`
}

// ExportRow is one flattened leave for the file renderers. Missing values
// are reported as "N/A".
type ExportRow struct {
	LeaveID       string `json:"leaveId"`
	Employee      string `json:"employee"`
	Email         string `json:"email"`
	Department    string `json:"department"`
	LeaveType     string `json:"leaveType"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	TotalDays     int    `json:"totalDays"`
	Status        string `json:"status"`
	Reason        string `json:"reason"`
	Reviewer      string `json:"reviewer"`
	ReviewComment string `json:"reviewComment"`
	RequestedOn   string `json:"requestedOn"`
	ReviewedOn    string `json:"reviewedOn"`
}

type ExportResult struct {
	Rows      []ExportRow `json:"rows"`
	Total     int64       `json:"total"`
	Truncated bool        `json:"truncated"`
}
