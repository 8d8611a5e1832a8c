package leave_test

import (
	"testing"
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/leave"
	leaveerrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/leave/errors"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTransition(t *testing.T) {
	dept := uuid.New()
	otherDept := uuid.New()

	manager := auth.Identity{UserID: uuid.New(), Role: auth.RoleManager, DepartmentID: &dept}
	outsider := auth.Identity{UserID: uuid.New(), Role: auth.RoleManager, DepartmentID: &otherDept}
	admin := auth.Identity{UserID: uuid.New(), Role: auth.RoleAdmin}
	employee := auth.Identity{UserID: uuid.New(), Role: auth.RoleEmployee, DepartmentID: &dept}

	leaveIn := func(status leave.Status) *leave.Leave {
		return &leave.Leave{
			ID:        uuid.New(),
			Status:    status,
			Requester: &user.User{ID: uuid.New(), DepartmentID: &dept},
		}
	}

	tests := []struct {
		name       string
		actor      auth.Identity
		status     leave.Status
		decision   leave.Decision
		hrRequired bool
		want       leave.Transition
		wantErr    error
	}{
		{"manager approves without hr", manager, leave.StatusPending, leave.DecisionApproved, false, leave.ManagerApproveNoHR{}, nil},
		{"manager approves needing hr", manager, leave.StatusPending, leave.DecisionApproved, true, leave.ManagerApproveNeedsHR{}, nil},
		{"manager rejects", manager, leave.StatusPending, leave.DecisionRejected, true, leave.ManagerReject{}, nil},
		{"hr approves", admin, leave.StatusPendingHR, leave.DecisionApproved, true, leave.HRDecision{Approve: true}, nil},
		{"hr rejects", admin, leave.StatusPendingHR, leave.DecisionRejected, true, leave.HRDecision{Approve: false}, nil},
		{"admin decides directly", admin, leave.StatusPending, leave.DecisionApproved, true, leave.AdminDirectDecision{Approve: true}, nil},
		{"manager outside department", outsider, leave.StatusPending, leave.DecisionApproved, false, nil, leaveerrors.ErrDepartmentScope},
		{"manager at hr stage", manager, leave.StatusPendingHR, leave.DecisionApproved, false, nil, leaveerrors.ErrReviewStageForbidden},
		{"employee reviews", employee, leave.StatusPending, leave.DecisionApproved, false, nil, leaveerrors.ErrReviewStageForbidden},
		{"already approved", admin, leave.StatusApproved, leave.DecisionRejected, false, nil, leaveerrors.ErrInvalidTransition},
		{"cancelled", manager, leave.StatusCancelled, leave.DecisionApproved, false, nil, leaveerrors.ErrInvalidTransition},
		{"bad decision", admin, leave.StatusPending, leave.DecisionCancelled, false, nil, leaveerrors.ErrInvalidDecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := leave.ResolveTransition(tt.actor, leaveIn(tt.status), tt.decision, tt.hrRequired)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransitionOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		t        leave.Transition
		next     leave.Status
		step     leave.Step
		decision leave.Decision
		effect   leave.LedgerEffect
	}{
		{"manager final approve", leave.ManagerApproveNoHR{}, leave.StatusApproved, leave.StepManager, leave.DecisionApproved, leave.EffectCommit},
		{"manager hands to hr", leave.ManagerApproveNeedsHR{}, leave.StatusPendingHR, leave.StepManager, leave.DecisionApproved, leave.EffectNone},
		{"manager reject", leave.ManagerReject{}, leave.StatusRejected, leave.StepManager, leave.DecisionRejected, leave.EffectRelease},
		{"hr approve", leave.HRDecision{Approve: true}, leave.StatusApproved, leave.StepHR, leave.DecisionApproved, leave.EffectCommit},
		{"hr reject", leave.HRDecision{}, leave.StatusRejected, leave.StepHR, leave.DecisionRejected, leave.EffectRelease},
		{"admin approve", leave.AdminDirectDecision{Approve: true}, leave.StatusApproved, leave.StepAdmin, leave.DecisionApproved, leave.EffectCommit},
		{"admin reject", leave.AdminDirectDecision{}, leave.StatusRejected, leave.StepAdmin, leave.DecisionRejected, leave.EffectRelease},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.next, tt.t.Next())
			assert.Equal(t, tt.step, tt.t.Step())
			assert.Equal(t, tt.decision, tt.t.Decision())
			assert.Equal(t, tt.effect, tt.t.Effect())
		})
	}
}

func TestLeave_TrailDerivedFields(t *testing.T) {
	managerID, hrID := uuid.New(), uuid.New()
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	l := leave.Leave{
		Status: leave.StatusApproved,
		Approvals: []leave.Approval{
			{Sequence: 1, Step: leave.StepManager, ActorID: managerID, Decision: leave.DecisionApproved, DecidedAt: at},
			{Sequence: 2, Step: leave.StepHR, ActorID: hrID, Decision: leave.DecisionApproved, DecidedAt: at.Add(time.Hour)},
		},
	}

	assert.Equal(t, leave.ApprovalStepCompleted, l.CurrentApprovalStep())
	require.NotNil(t, l.ManagerEntry())
	assert.Equal(t, managerID, l.ManagerEntry().ActorID)
	require.NotNil(t, l.HREntry())
	assert.Equal(t, hrID, l.HREntry().ActorID)
	require.NotNil(t, l.FinalEntry())
	assert.Equal(t, hrID, l.FinalEntry().ActorID)
	assert.Equal(t, 3, l.NextSequence())

	l.Status = leave.StatusPendingHR
	l.Approvals = l.Approvals[:1]
	assert.Equal(t, leave.ApprovalStepHR, l.CurrentApprovalStep())
	assert.Nil(t, l.FinalEntry())

	l.Status = leave.StatusPending
	l.Approvals = nil
	assert.Equal(t, leave.ApprovalStepManager, l.CurrentApprovalStep())
	assert.Nil(t, l.ManagerEntry())
	assert.Equal(t, 1, l.NextSequence())

	l.StartDate = time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2024, l.BalanceKey().Year)
}
