package workflow

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=workflow_resolver.go -destination=mock/workflow_resolver_mock.go -package=mock

// Resolver answers whether a leave needs HR approval on top of the manager.
type Resolver interface {
	WithTx(tx *gorm.DB) Resolver
	RequiresHRApproval(ctx context.Context, leaveTypeID string, totalDays int) (bool, error)
}

type resolver struct {
	repo Repository
}

func NewResolver(repo Repository) Resolver {
	return &resolver{repo: repo}
}

func (r *resolver) WithTx(tx *gorm.DB) Resolver {
	return &resolver{repo: r.repo.WithTx(tx)}
}

// RequiresHRApproval is false when the leave type has no workflow configured.
func (r *resolver) RequiresHRApproval(ctx context.Context, leaveTypeID string, totalDays int) (bool, error) {
	w, err := r.repo.FindByLeaveType(ctx, leaveTypeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return w.RequiresHRFor(totalDays), nil
}
