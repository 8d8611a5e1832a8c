package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/contextutil"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/database"
	workflowerrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/workflow/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=workflow_service.go -destination=mock/workflow_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]WorkflowResponse, error)
	GetByLeaveType(ctx context.Context, leaveTypeID string) (WorkflowResponse, error)
	Create(ctx context.Context, req CreateWorkflowRequest) (WorkflowResponse, error)
	Update(ctx context.Context, id string, req UpdateWorkflowRequest) (WorkflowResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("workflow.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workflow.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]WorkflowResponse, error) {
	workflows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]WorkflowResponse, len(workflows))
	for i, w := range workflows {
		resp[i] = mapToResponse(w)
	}
	return resp, nil
}

func (s *service) GetByLeaveType(ctx context.Context, leaveTypeID string) (WorkflowResponse, error) {
	if _, err := uuid.Parse(leaveTypeID); err != nil {
		return WorkflowResponse{}, workflowerrors.ErrLeaveTypeNotFound
	}

	w, err := s.repo.FindByLeaveType(ctx, leaveTypeID)
	if err != nil {
		return WorkflowResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*w), nil
}

func (s *service) Create(ctx context.Context, req CreateWorkflowRequest) (WorkflowResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if req.MinDaysForHR != nil && *req.MinDaysForHR < 1 {
		return WorkflowResponse{}, workflowerrors.ErrInvalidMinDays
	}
	leaveTypeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return WorkflowResponse{}, workflowerrors.ErrLeaveTypeNotFound
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return WorkflowResponse{}, tx.Error
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	exists, err := repo.LeaveTypeExists(ctx, req.LeaveTypeID)
	if err != nil {
		return WorkflowResponse{}, err
	}
	if !exists {
		return WorkflowResponse{}, workflowerrors.ErrLeaveTypeNotFound
	}

	if _, err := repo.FindByLeaveType(ctx, req.LeaveTypeID); err == nil {
		return WorkflowResponse{}, workflowerrors.ErrWorkflowExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return WorkflowResponse{}, err
	}

	w := &ApprovalWorkflow{
		ID:           uuid.New(),
		LeaveTypeID:  leaveTypeID,
		RequiresHR:   req.RequiresHR,
		MinDaysForHR: req.MinDaysForHR,
	}
	if err := repo.Create(ctx, w); err != nil {
		log.Warn("create workflow failed", zap.String("leave_type_id", req.LeaveTypeID), zap.Error(err))
		return WorkflowResponse{}, mapRepositoryError(err)
	}

	created, err := repo.FindByID(ctx, w.ID.String())
	if err != nil {
		return WorkflowResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return WorkflowResponse{}, mapRepositoryError(err)
	}

	log.Info("workflow created",
		zap.String("workflow_id", w.ID.String()),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.Bool("requires_hr", w.RequiresHR),
	)
	return mapToResponse(*created), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateWorkflowRequest) (WorkflowResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return WorkflowResponse{}, workflowerrors.ErrInvalidWorkflowID
	}

	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return WorkflowResponse{}, mapRepositoryError(err)
	}

	if req.RequiresHR != nil {
		w.RequiresHR = *req.RequiresHR
	}
	switch {
	case req.ClearMinDays:
		w.MinDaysForHR = nil
	case req.MinDaysForHR != nil:
		if *req.MinDaysForHR < 1 {
			return WorkflowResponse{}, workflowerrors.ErrInvalidMinDays
		}
		w.MinDaysForHR = req.MinDaysForHR
	}
	w.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, w); err != nil {
		log.Error("update workflow failed", zap.String("workflow_id", id), zap.Error(err))
		return WorkflowResponse{}, err
	}

	log.Info("workflow updated", zap.String("workflow_id", id))
	return mapToResponse(*w), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return workflowerrors.ErrInvalidWorkflowID
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return workflowerrors.ErrWorkflowNotFound
	}

	contextutil.GetLogger(ctx, s.logger).Info("workflow deleted", zap.String("workflow_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return workflowerrors.ErrWorkflowNotFound
	}
	if database.IsUniqueViolation(err, "uq_approval_workflows_leave_type") {
		return workflowerrors.ErrWorkflowExists.WithCause(err)
	}
	return err
}

func mapToResponse(w ApprovalWorkflow) WorkflowResponse {
	return WorkflowResponse{
		ID:            w.ID.String(),
		LeaveTypeID:   w.LeaveTypeID.String(),
		LeaveTypeName: w.LeaveTypeName,
		RequiresHR:    w.RequiresHR,
		MinDaysForHR:  w.MinDaysForHR,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}
