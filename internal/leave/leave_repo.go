package leave

import (
	"context"
	"errors"
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/leavetype"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListFilter struct {
	RequesterID  *uuid.UUID
	DepartmentID *uuid.UUID
	LeaveTypeID  *uuid.UUID
	Status       Status
	StartFrom    *time.Time
	StartTo      *time.Time
	Offset       int
	Limit        int
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, l *Leave) error
	AppendApproval(ctx context.Context, a *Approval) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Leave, error)
	List(ctx context.Context, filter ListFilter) ([]Leave, int64, error)
	HasOverlap(ctx context.Context, requesterID uuid.UUID, start, end time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	LockRequester(ctx context.Context, userID uuid.UUID) (*user.User, error)
	FindActiveLeaveType(ctx context.Context, id string) (*leavetype.LeaveType, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error
}

func (r *repository) AppendApproval(ctx context.Context, a *Approval) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

func (r *repository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Requester.Department").
		Preload("LeaveType").
		Preload("Approvals", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		}).
		Preload("Approvals.Actor")
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	if err := r.withDetails(ctx).Where("id = ?", id).Take(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// FindByIDForUpdate locks the leave row. The requester and trail are loaded
// alongside so guards can run without another round trip.
func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&l).Error
	if err != nil {
		return nil, err
	}

	var requester user.User
	if err := r.db.WithContext(ctx).Where("id = ?", l.RequesterID).Take(&requester).Error; err == nil {
		l.Requester = &requester
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Where("leave_id = ?", l.ID).Order("sequence ASC").Find(&l.Approvals).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Leave, int64, error) {
	q := r.db.WithContext(ctx).Model(&Leave{})
	if filter.RequesterID != nil {
		q = q.Where("leaves.requester_id = ?", *filter.RequesterID)
	}
	if filter.DepartmentID != nil {
		members := r.db.Table("users").Select("id").Where("department_id = ?", *filter.DepartmentID)
		q = q.Where("leaves.requester_id IN (?)", members)
	}
	if filter.LeaveTypeID != nil {
		q = q.Where("leaves.leave_type_id = ?", *filter.LeaveTypeID)
	}
	if filter.Status != "" {
		q = q.Where("leaves.status = ?", string(filter.Status))
	}
	if filter.StartFrom != nil {
		q = q.Where("leaves.start_date >= ?", *filter.StartFrom)
	}
	if filter.StartTo != nil {
		q = q.Where("leaves.start_date <= ?", *filter.StartTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leaves []Leave
	err := q.
		Preload("Requester.Department").
		Preload("LeaveType").
		Preload("Approvals", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		}).
		Preload("Approvals.Actor").
		Order("leaves.created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&leaves).Error
	return leaves, total, err
}

// HasOverlap is inclusive on both ends.
func (r *repository) HasOverlap(ctx context.Context, requesterID uuid.UUID, start, end time.Time) (bool, error) {
	statuses := make([]string, len(BlockingStatuses))
	for i, s := range BlockingStatuses {
		statuses[i] = string(s)
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("requester_id = ?", requesterID).
		Where("status IN ?", statuses).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Count(&count).Error
	return count > 0, err
}

// UpdateStatus only writes when the row is still in from. Zero rows means
// another reviewer got there first.
func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("leave_id = ?", id).Delete(&Approval{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Leave{}).Error
}

// LockRequester serialises leave creation per requester.
func (r *repository) LockRequester(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND archived_at IS NULL", userID).
		Take(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindActiveLeaveType(ctx context.Context, id string) (*leavetype.LeaveType, error) {
	var lt leavetype.LeaveType
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).Take(&lt).Error
	if err != nil {
		return nil, err
	}
	return &lt, nil
}
