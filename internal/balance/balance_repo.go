package balance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=balance_repo.go -destination=mock/balance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByKeyForUpdate(ctx context.Context, key Key) (*LeaveBalance, error)
	FindByIDForUpdate(ctx context.Context, id string) (*LeaveBalance, error)
	FindByID(ctx context.Context, id string) (*LeaveBalance, error)
	ListByUserYear(ctx context.Context, userID string, year int) ([]LeaveBalance, error)
	UpdateCounters(ctx context.Context, b *LeaveBalance) error
	UpsertAllocated(ctx context.Context, b *LeaveBalance) error
	CreateMissing(ctx context.Context, rows []LeaveBalance) (int64, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
	ActiveLeaveTypes(ctx context.Context) ([]LeaveTypeAllocation, error)
	DefaultDaysPerYear(ctx context.Context, leaveTypeID uuid.UUID) (int, error)
	ActiveUserIDs(ctx context.Context) ([]uuid.UUID, error)
	UserExists(ctx context.Context, userID string) (bool, error)
	LeaveTypeExists(ctx context.Context, leaveTypeID string) (bool, error)
}

// LeaveTypeAllocation is the slice of a leave type needed to seed balances.
type LeaveTypeAllocation struct {
	ID                 uuid.UUID
	DefaultDaysPerYear int
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

func (r *repository) FindByKeyForUpdate(ctx context.Context, key Key) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND leave_type_id = ? AND year = ?", key.UserID, key.LeaveTypeID, key.Year).
		Take(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) withLeaveType(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("leave_balances AS b").
		Select("b.*, lt.name AS leave_type_name").
		Joins("JOIN leave_types lt ON lt.id = b.leave_type_id")
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveBalance, error) {
	var b LeaveBalance
	if err := r.withLeaveType(ctx).Where("b.id = ?", id).Take(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) ListByUserYear(ctx context.Context, userID string, year int) ([]LeaveBalance, error) {
	var rows []LeaveBalance
	err := r.withLeaveType(ctx).
		Where("b.user_id = ? AND b.year = ?", userID, year).
		Order("lt.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) UpdateCounters(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).Model(&LeaveBalance{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"allocated":  b.Allocated,
			"used":       b.Used,
			"pending":    b.Pending,
			"updated_at": time.Now(),
		}).Error
}

func (r *repository) UpsertAllocated(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "leave_type_id"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"allocated", "updated_at"}),
		}).
		Create(b).Error
}

func (r *repository) CreateMissing(ctx context.Context, rows []LeaveBalance) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "leave_type_id"}, {Name: "year"}},
			DoNothing: true,
		}).
		Create(&rows)
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&LeaveBalance{})
	return res.RowsAffected, res.Error
}

func (r *repository) ActiveLeaveTypes(ctx context.Context) ([]LeaveTypeAllocation, error) {
	var rows []LeaveTypeAllocation
	err := r.db.WithContext(ctx).
		Table("leave_types").
		Select("id, default_days_per_year").
		Where("is_active = ?", true).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) DefaultDaysPerYear(ctx context.Context, leaveTypeID uuid.UUID) (int, error) {
	var row LeaveTypeAllocation
	err := r.db.WithContext(ctx).
		Table("leave_types").
		Select("id, default_days_per_year").
		Where("id = ?", leaveTypeID).
		Take(&row).Error
	return row.DefaultDaysPerYear, err
}

func (r *repository) ActiveUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("users").
		Where("is_active = ? AND archived_at IS NULL", true).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) UserExists(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("users").Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *repository) LeaveTypeExists(ctx context.Context, leaveTypeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("leave_types").Where("id = ?", leaveTypeID).Count(&count).Error
	return count > 0, err
}
