package leave

import (
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth"
	leaveerrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/leave/errors"
)

type LedgerEffect int

const (
	EffectNone LedgerEffect = iota
	EffectCommit
	EffectRelease
)

func (e LedgerEffect) String() string {
	switch e {
	case EffectCommit:
		return "commit"
	case EffectRelease:
		return "release"
	default:
		return "none"
	}
}

// Transition is the outcome of one review decision. The set of variants is
// closed: only the types in this file implement it.
type Transition interface {
	Next() Status
	Step() Step
	Decision() Decision
	Effect() LedgerEffect
	transition()
}

// ManagerApproveNoHR is a manager approval that needs no further review.
type ManagerApproveNoHR struct{}

func (ManagerApproveNoHR) Next() Status         { return StatusApproved }
func (ManagerApproveNoHR) Step() Step           { return StepManager }
func (ManagerApproveNoHR) Decision() Decision   { return DecisionApproved }
func (ManagerApproveNoHR) Effect() LedgerEffect { return EffectCommit }
func (ManagerApproveNoHR) transition()          {}

// ManagerApproveNeedsHR hands the leave to HR. Days stay pending.
type ManagerApproveNeedsHR struct{}

func (ManagerApproveNeedsHR) Next() Status         { return StatusPendingHR }
func (ManagerApproveNeedsHR) Step() Step           { return StepManager }
func (ManagerApproveNeedsHR) Decision() Decision   { return DecisionApproved }
func (ManagerApproveNeedsHR) Effect() LedgerEffect { return EffectNone }
func (ManagerApproveNeedsHR) transition()          {}

type ManagerReject struct{}

func (ManagerReject) Next() Status         { return StatusRejected }
func (ManagerReject) Step() Step           { return StepManager }
func (ManagerReject) Decision() Decision   { return DecisionRejected }
func (ManagerReject) Effect() LedgerEffect { return EffectRelease }
func (ManagerReject) transition()          {}

// HRDecision settles a pending_hr leave.
type HRDecision struct {
	Approve bool
}

func (d HRDecision) Next() Status         { return terminalStatus(d.Approve) }
func (HRDecision) Step() Step             { return StepHR }
func (d HRDecision) Decision() Decision   { return terminalDecision(d.Approve) }
func (d HRDecision) Effect() LedgerEffect { return terminalEffect(d.Approve) }
func (HRDecision) transition()            {}

// AdminDirectDecision settles a pending leave without the manager step.
type AdminDirectDecision struct {
	Approve bool
}

func (d AdminDirectDecision) Next() Status         { return terminalStatus(d.Approve) }
func (AdminDirectDecision) Step() Step             { return StepAdmin }
func (d AdminDirectDecision) Decision() Decision   { return terminalDecision(d.Approve) }
func (d AdminDirectDecision) Effect() LedgerEffect { return terminalEffect(d.Approve) }
func (AdminDirectDecision) transition()            {}

func terminalStatus(approve bool) Status {
	if approve {
		return StatusApproved
	}
	return StatusRejected
}

func terminalDecision(approve bool) Decision {
	if approve {
		return DecisionApproved
	}
	return DecisionRejected
}

func terminalEffect(approve bool) LedgerEffect {
	if approve {
		return EffectCommit
	}
	return EffectRelease
}

// ResolveTransition decides what a review does to l. It has no side effects;
// hrRequired only matters for a manager approving a pending leave.
func ResolveTransition(actor auth.Identity, l *Leave, decision Decision, hrRequired bool) (Transition, error) {
	if decision != DecisionApproved && decision != DecisionRejected {
		return nil, leaveerrors.ErrInvalidDecision
	}
	if !l.Status.Decidable() {
		return nil, leaveerrors.ErrInvalidTransition
	}
	approve := decision == DecisionApproved

	switch {
	case actor.IsManager():
		if !actor.SameDepartment(l.RequesterDepartment()) {
			return nil, leaveerrors.ErrDepartmentScope
		}
		if l.Status != StatusPending {
			return nil, leaveerrors.ErrReviewStageForbidden
		}
		switch {
		case !approve:
			return ManagerReject{}, nil
		case hrRequired:
			return ManagerApproveNeedsHR{}, nil
		default:
			return ManagerApproveNoHR{}, nil
		}

	case actor.IsAdmin():
		if l.Status == StatusPendingHR {
			return HRDecision{Approve: approve}, nil
		}
		return AdminDirectDecision{Approve: approve}, nil

	default:
		return nil, leaveerrors.ErrReviewStageForbidden
	}
}
