package leave

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/balance"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/daycount"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/events"
	leaveerrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/leave/errors"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/messaging/kafka"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/contextutil"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/workflow"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor auth.Identity, req CreateLeaveRequest) (LeaveResponse, error)
	ListMine(ctx context.Context, actor auth.Identity, q ListQuery) ([]LeaveResponse, int64, error)
	ListTeam(ctx context.Context, actor auth.Identity, q ListQuery) ([]LeaveResponse, int64, error)
	ListAll(ctx context.Context, q ListQuery) ([]LeaveResponse, int64, error)
	GetByID(ctx context.Context, actor auth.Identity, id string) (LeaveResponse, error)
	UpdateStatus(ctx context.Context, actor auth.Identity, id string, req UpdateStatusRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, actor auth.Identity, id string) (LeaveResponse, error)
	Delete(ctx context.Context, actor auth.Identity, id string) error
}

type service struct {
	db       *gorm.DB
	repo     Repository
	ledger   balance.Ledger
	resolver workflow.Resolver
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires the leave lifecycle. outbox may be nil.
func NewService(
	db *gorm.DB,
	repo Repository,
	ledger balance.Ledger,
	resolver workflow.Resolver,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		ledger:   ledger,
		resolver: resolver,
		outbox:   outbox,
		logger:   l,
		now:      time.Now,
	}
}

// Create validates the request, then reserves balance, checks overlap and
// inserts the leave in one transaction.
func (s *service) Create(ctx context.Context, actor auth.Identity, req CreateLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create leave requested",
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	if _, err := uuid.Parse(req.LeaveTypeID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveTypeID
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	lt, err := s.repo.FindActiveLeaveType(ctx, req.LeaveTypeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return LeaveResponse{}, leaveerrors.ErrLeaveTypeNotFound
	}
	if err != nil {
		return LeaveResponse{}, err
	}

	totalDays, err := lt.CountDays(start, end)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if totalDays == 0 {
		return LeaveResponse{}, leaveerrors.ErrNoChargeableDays
	}

	l := &Leave{
		ID:          uuid.New(),
		RequesterID: actor.UserID,
		LeaveTypeID: lt.ID,
		StartDate:   start,
		EndDate:     end,
		TotalDays:   totalDays,
		Reason:      strings.TrimSpace(req.Reason),
		Status:      StatusPending,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		log.Error("create leave begin tx failed", zap.Error(tx.Error))
		return LeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.LockRequester(ctx, actor.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrRequesterNotFound
		}
		return LeaveResponse{}, err
	}

	if err := s.ledger.WithTx(tx).Reserve(ctx, l.BalanceKey(), totalDays); err != nil {
		log.Warn("create leave reserve failed",
			zap.String("leave_type_id", lt.ID.String()),
			zap.Int("total_days", totalDays),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	overlap, err := qtx.HasOverlap(ctx, actor.UserID, start, end)
	if err != nil {
		log.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		log.Warn("create leave overlap detected",
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	if err := qtx.Create(ctx, l); err != nil {
		log.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := s.enqueue(ctx, tx, l.ID.String(), events.LeaveCreatedEventType, events.LeaveCreatedEvent{
		EventType:   events.LeaveCreatedEventType,
		RequestID:   contextutil.GetRequestID(ctx),
		LeaveID:     l.ID.String(),
		RequesterID: l.RequesterID.String(),
		LeaveTypeID: l.LeaveTypeID.String(),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TotalDays:   totalDays,
		OccurredAt:  s.now().UTC(),
	}); err != nil {
		return LeaveResponse{}, err
	}

	created, err := qtx.FindByID(ctx, l.ID.String())
	if err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		log.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.Int("total_days", totalDays),
	)
	return mapToResponse(*created), nil
}

func (s *service) ListMine(ctx context.Context, actor auth.Identity, q ListQuery) ([]LeaveResponse, int64, error) {
	q = q.Normalize()
	filter, err := baseFilter(q)
	if err != nil {
		return nil, 0, err
	}
	filter.RequesterID = &actor.UserID
	return s.list(ctx, filter)
}

// ListTeam scopes managers to their own department. A manager without a
// department has no team.
func (s *service) ListTeam(ctx context.Context, actor auth.Identity, q ListQuery) ([]LeaveResponse, int64, error) {
	q = q.Normalize()
	filter, err := baseFilter(q)
	if err != nil {
		return nil, 0, err
	}

	switch {
	case actor.IsAdmin():
		if err := applyDepartment(&filter, q.DepartmentID); err != nil {
			return nil, 0, err
		}
	case actor.IsManager():
		if actor.DepartmentID == nil {
			return []LeaveResponse{}, 0, nil
		}
		filter.DepartmentID = actor.DepartmentID
	default:
		return nil, 0, leaveerrors.ErrViewForbidden
	}
	return s.list(ctx, filter)
}

func (s *service) ListAll(ctx context.Context, q ListQuery) ([]LeaveResponse, int64, error) {
	q = q.Normalize()
	filter, err := baseFilter(q)
	if err != nil {
		return nil, 0, err
	}
	if err := applyDepartment(&filter, q.DepartmentID); err != nil {
		return nil, 0, err
	}
	return s.list(ctx, filter)
}

func (s *service) list(ctx context.Context, filter ListFilter) ([]LeaveResponse, int64, error) {
	leaves, total, err := s.repo.List(ctx, filter)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list leaves failed", zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(leaves), total, nil
}

func (s *service) GetByID(ctx context.Context, actor auth.Identity, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if err := canView(actor, l); err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

// UpdateStatus applies one review decision. The leave row lock and the
// conditional status write give exactly one winner among racing reviewers.
func (s *service) UpdateStatus(ctx context.Context, actor auth.Identity, id string, req UpdateStatusRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		log.Error("update leave status begin tx failed", zap.Error(tx.Error))
		return LeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}

	hrRequired, err := s.resolver.WithTx(tx).RequiresHRApproval(ctx, l.LeaveTypeID.String(), l.TotalDays)
	if err != nil {
		log.Error("update leave status workflow lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	t, err := ResolveTransition(actor, l, Decision(req.Status), hrRequired)
	if err != nil {
		log.Warn("update leave status rejected",
			zap.String("leave_id", id),
			zap.String("from_status", string(l.Status)),
			zap.String("decision", req.Status),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if err := s.apply(ctx, qtx, tx, l, actor, t.Next(), t.Step(), t.Decision(), req.ReviewComment); err != nil {
		return LeaveResponse{}, err
	}

	switch t.Effect() {
	case EffectCommit:
		err = s.ledger.WithTx(tx).Commit(ctx, l.BalanceKey(), l.TotalDays)
	case EffectRelease:
		err = s.ledger.WithTx(tx).Release(ctx, l.BalanceKey(), l.TotalDays)
	}
	if err != nil {
		log.Error("update leave status ledger failed",
			zap.String("leave_id", id),
			zap.String("effect", t.Effect().String()),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	updated, err := qtx.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		log.Error("update leave status commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("update leave status success",
		zap.String("leave_id", leaveID.String()),
		zap.String("from_status", string(l.Status)),
		zap.String("to_status", string(t.Next())),
		zap.String("step", string(t.Step())),
	)
	return mapToResponse(*updated), nil
}

func (s *service) Cancel(ctx context.Context, actor auth.Identity, id string) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return LeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if l.RequesterID != actor.UserID {
		return LeaveResponse{}, leaveerrors.ErrNotOwner
	}
	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrCancelNotPending
	}

	if err := s.apply(ctx, qtx, tx, l, actor, StatusCancelled, StepRequester, DecisionCancelled, ""); err != nil {
		if errors.Is(err, leaveerrors.ErrInvalidTransition) {
			return LeaveResponse{}, leaveerrors.ErrCancelNotPending
		}
		return LeaveResponse{}, err
	}
	if err := s.ledger.WithTx(tx).Release(ctx, l.BalanceKey(), l.TotalDays); err != nil {
		return LeaveResponse{}, err
	}

	updated, err := qtx.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		log.Error("cancel leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("cancel leave success", zap.String("leave_id", id))
	return mapToResponse(*updated), nil
}

// Delete removes a leave and its trail, undoing whatever it held on the
// ledger.
func (s *service) Delete(ctx context.Context, actor auth.Identity, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return leaveerrors.ErrInvalidLeaveID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	ledger := s.ledger.WithTx(tx)
	switch l.Status {
	case StatusPending, StatusPendingHR:
		err = ledger.Release(ctx, l.BalanceKey(), l.TotalDays)
	case StatusApproved:
		err = ledger.ReverseUsed(ctx, l.BalanceKey(), l.TotalDays)
	}
	if err != nil {
		log.Error("delete leave ledger reversal failed", zap.String("leave_id", id), zap.Error(err))
		return err
	}

	if err := qtx.Delete(ctx, l.ID); err != nil {
		log.Error("delete leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return err
	}

	if err := s.enqueue(ctx, tx, id, events.LeaveDeletedEventType, events.LeaveDeletedEvent{
		EventType:   events.LeaveDeletedEventType,
		RequestID:   contextutil.GetRequestID(ctx),
		LeaveID:     id,
		RequesterID: l.RequesterID.String(),
		PriorStatus: string(l.Status),
		OccurredAt:  s.now().UTC(),
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	log.Info("delete leave success",
		zap.String("leave_id", id),
		zap.String("prior_status", string(l.Status)),
		zap.String("deleted_by", actor.UserID.String()),
	)
	return nil
}

// apply moves l from its current status to next, appends the trail entry and
// queues the status event.
func (s *service) apply(
	ctx context.Context,
	qtx Repository,
	tx *gorm.DB,
	l *Leave,
	actor auth.Identity,
	next Status,
	step Step,
	decision Decision,
	comment string,
) error {
	rows, err := qtx.UpdateStatus(ctx, l.ID, l.Status, next)
	if err != nil {
		return err
	}
	if rows == 0 {
		return leaveerrors.ErrInvalidTransition
	}

	now := s.now().UTC()
	entry := &Approval{
		ID:        uuid.New(),
		LeaveID:   l.ID,
		Sequence:  l.NextSequence(),
		Step:      step,
		ActorID:   actor.UserID,
		Decision:  decision,
		Comment:   strings.TrimSpace(comment),
		DecidedAt: now,
	}
	if err := qtx.AppendApproval(ctx, entry); err != nil {
		return err
	}

	return s.enqueue(ctx, tx, l.ID.String(), events.LeaveStatusChangedEventType, events.LeaveStatusChangedEvent{
		EventType:   events.LeaveStatusChangedEventType,
		RequestID:   contextutil.GetRequestID(ctx),
		LeaveID:     l.ID.String(),
		RequesterID: l.RequesterID.String(),
		ActorID:     actor.UserID.String(),
		FromStatus:  string(l.Status),
		ToStatus:    string(next),
		Step:        string(step),
		OccurredAt:  now,
	})
}

func (s *service) enqueue(ctx context.Context, tx *gorm.DB, leaveID, eventType string, payload any) error {
	if s.outbox == nil {
		return nil
	}
	event, err := kafka.NewOutboxEvent(contextutil.GetRequestID(ctx), "leave", leaveID,
		eventType, events.LeaveLifecycleTopic, payload)
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("leave outbox persist failed",
			zap.String("leave_id", leaveID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func canView(actor auth.Identity, l *Leave) error {
	switch {
	case actor.IsAdmin(), l.RequesterID == actor.UserID:
		return nil
	case actor.IsManager():
		if actor.SameDepartment(l.RequesterDepartment()) {
			return nil
		}
		return leaveerrors.ErrDepartmentScope
	default:
		return leaveerrors.ErrViewForbidden
	}
}

func baseFilter(q ListQuery) (ListFilter, error) {
	filter := ListFilter{
		Status: Status(q.Status),
		Offset: (q.Page - 1) * q.Limit,
		Limit:  q.Limit,
	}
	if q.LeaveTypeID != "" {
		id, err := uuid.Parse(q.LeaveTypeID)
		if err != nil {
			return ListFilter{}, leaveerrors.ErrInvalidLeaveTypeID
		}
		filter.LeaveTypeID = &id
	}
	if q.StartDate != "" {
		t, err := parseDate(q.StartDate)
		if err != nil {
			return ListFilter{}, err
		}
		filter.StartFrom = &t
	}
	if q.EndDate != "" {
		t, err := parseDate(q.EndDate)
		if err != nil {
			return ListFilter{}, err
		}
		filter.StartTo = &t
	}
	return filter, nil
}

func applyDepartment(filter *ListFilter, departmentID string) error {
	if departmentID == "" {
		return nil
	}
	id, err := uuid.Parse(departmentID)
	if err != nil {
		return leaveerrors.ErrInvalidDepartmentID
	}
	filter.DepartmentID = &id
	return nil
}

func parseRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := parseDate(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return daycount.Date(t), nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}
	return err
}
