package report

import (
	"context"
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/leave"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveFilter is the optional narrowing applied on top of a Scope.
type LeaveFilter struct {
	Status      leave.Status
	LeaveTypeID *uuid.UUID
	StartFrom   *time.Time
	StartTo     *time.Time
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	ApprovedIntersecting(ctx context.Context, scope Scope, from, to time.Time) ([]leave.Leave, error)
	ApprovedStarting(ctx context.Context, scope Scope, from, to time.Time, limit int) ([]leave.Leave, error)
	Leaves(ctx context.Context, scope Scope, filter LeaveFilter) ([]leave.Leave, error)
	Export(ctx context.Context, scope Scope, filter LeaveFilter, limit int) ([]leave.Leave, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// visibleTo is a gorm scope restricting leaves to scope.
func visibleTo(scope Scope) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if scope.RequesterID != nil {
			db = db.Where("leaves.requester_id = ?", *scope.RequesterID)
		}
		if scope.DepartmentID != nil {
			members := db.Session(&gorm.Session{NewDB: true}).
				Table("users").
				Select("id").
				Where("department_id = ?", *scope.DepartmentID)
			db = db.Where("leaves.requester_id IN (?)", members)
		}
		return db
	}
}

func (r *repository) scoped(ctx context.Context, scope Scope) *gorm.DB {
	return r.db.WithContext(ctx).Model(&leave.Leave{}).Scopes(visibleTo(scope))
}

func (r *repository) filtered(ctx context.Context, scope Scope, filter LeaveFilter) *gorm.DB {
	q := r.scoped(ctx, scope)
	if filter.Status != "" {
		q = q.Where("leaves.status = ?", string(filter.Status))
	}
	if filter.LeaveTypeID != nil {
		q = q.Where("leaves.leave_type_id = ?", *filter.LeaveTypeID)
	}
	if filter.StartFrom != nil {
		q = q.Where("leaves.start_date >= ?", *filter.StartFrom)
	}
	if filter.StartTo != nil {
		q = q.Where("leaves.start_date <= ?", *filter.StartTo)
	}
	return q
}

func withDetails(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Requester.Department").
		Preload("LeaveType").
		Preload("Approvals", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		}).
		Preload("Approvals.Actor")
}

// ApprovedIntersecting returns approved leaves overlapping [from, to], both
// ends inclusive.
func (r *repository) ApprovedIntersecting(ctx context.Context, scope Scope, from, to time.Time) ([]leave.Leave, error) {
	var leaves []leave.Leave
	err := withDetails(r.scoped(ctx, scope)).
		Where("leaves.status = ?", string(leave.StatusApproved)).
		Where("leaves.start_date <= ? AND leaves.end_date >= ?", to, from).
		Order("leaves.start_date ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) ApprovedStarting(ctx context.Context, scope Scope, from, to time.Time, limit int) ([]leave.Leave, error) {
	var leaves []leave.Leave
	err := withDetails(r.scoped(ctx, scope)).
		Where("leaves.status = ?", string(leave.StatusApproved)).
		Where("leaves.start_date >= ? AND leaves.start_date <= ?", from, to).
		Order("leaves.start_date ASC").
		Limit(limit).
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) Leaves(ctx context.Context, scope Scope, filter LeaveFilter) ([]leave.Leave, error) {
	var leaves []leave.Leave
	err := r.filtered(ctx, scope, filter).
		Preload("Requester").
		Preload("LeaveType").
		Order("leaves.start_date ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) Export(ctx context.Context, scope Scope, filter LeaveFilter, limit int) ([]leave.Leave, int64, error) {
	q := r.filtered(ctx, scope, filter)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leaves []leave.Leave
	err := withDetails(q).
		Order("leaves.created_at DESC").
		Limit(limit).
		Find(&leaves).Error
	return leaves, total, err
}
