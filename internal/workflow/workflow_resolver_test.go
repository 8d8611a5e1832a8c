package workflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/workflow"

	workflowMock "github.com/adeleke-taiwo/HR-LeaveFlow/internal/workflow/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestResolver_RequiresHRApproval(t *testing.T) {
	tests := []struct {
		name     string
		workflow *workflow.ApprovalWorkflow
		findErr  error
		days     int
		want     bool
	}{
		{"threshold reached", &workflow.ApprovalWorkflow{MinDaysForHR: intPtr(5)}, nil, 5, true},
		{"threshold exceeded", &workflow.ApprovalWorkflow{MinDaysForHR: intPtr(5)}, nil, 12, true},
		{"below threshold", &workflow.ApprovalWorkflow{MinDaysForHR: intPtr(5)}, nil, 4, false},
		{"requires hr always", &workflow.ApprovalWorkflow{RequiresHR: true}, nil, 1, true},
		{"no threshold", &workflow.ApprovalWorkflow{}, nil, 100, false},
		{"no workflow configured", nil, gorm.ErrRecordNotFound, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := workflowMock.NewMockRepository(ctrl)

			repo.EXPECT().WithTx(gomock.Any()).Return(repo)
			repo.EXPECT().FindByLeaveType(gomock.Any(), "lt-1").Return(tt.workflow, tt.findErr)

			got, err := workflow.NewResolver(repo).WithTx(nil).RequiresHRApproval(context.Background(), "lt-1", tt.days)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_PropagatesStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := workflowMock.NewMockRepository(ctrl)
	boom := errors.New("connection reset")

	repo.EXPECT().FindByLeaveType(gomock.Any(), "any").Return(nil, boom)

	_, err := workflow.NewResolver(repo).RequiresHRApproval(context.Background(), "any", 3)
	assert.ErrorIs(t, err, boom)
}
