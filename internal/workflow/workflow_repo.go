package workflow

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=workflow_repo.go -destination=mock/workflow_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, w *ApprovalWorkflow) error
	FindAll(ctx context.Context) ([]ApprovalWorkflow, error)
	FindByID(ctx context.Context, id string) (*ApprovalWorkflow, error)
	FindByLeaveType(ctx context.Context, leaveTypeID string) (*ApprovalWorkflow, error)
	LeaveTypeExists(ctx context.Context, leaveTypeID string) (bool, error)
	Update(ctx context.Context, w *ApprovalWorkflow) error
	Delete(ctx context.Context, id string) (int64, error)
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

func (r *repository) withLeaveType(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("approval_workflows AS w").
		Select("w.*, lt.name AS leave_type_name").
		Joins("LEFT JOIN leave_types lt ON lt.id = w.leave_type_id")
}

func (r *repository) Create(ctx context.Context, w *ApprovalWorkflow) error {
	return r.db.WithContext(ctx).Omit("LeaveTypeName").Create(w).Error
}

func (r *repository) FindAll(ctx context.Context) ([]ApprovalWorkflow, error) {
	var workflows []ApprovalWorkflow
	err := r.withLeaveType(ctx).Order("lt.name ASC").Scan(&workflows).Error
	return workflows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*ApprovalWorkflow, error) {
	var w ApprovalWorkflow
	if err := r.withLeaveType(ctx).Where("w.id = ?", id).Take(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *repository) FindByLeaveType(ctx context.Context, leaveTypeID string) (*ApprovalWorkflow, error) {
	var w ApprovalWorkflow
	if err := r.withLeaveType(ctx).Where("w.leave_type_id = ?", leaveTypeID).Take(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *repository) LeaveTypeExists(ctx context.Context, leaveTypeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("leave_types").Where("id = ?", leaveTypeID).Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, w *ApprovalWorkflow) error {
	return r.db.WithContext(ctx).Model(&ApprovalWorkflow{}).
		Where("id = ?", w.ID).
		Updates(map[string]any{
			"requires_hr":     w.RequiresHR,
			"min_days_for_hr": w.MinDaysForHR,
			"updated_at":      w.UpdatedAt,
		}).Error
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ApprovalWorkflow{})
	return res.RowsAffected, res.Error
}
