package leavetype

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/daycount"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/events"
	leavetypeerrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/leavetype/errors"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/messaging/kafka"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/contextutil"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/database"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	ActiveLeaveTypesKey = "leave_types:active"
	activeCacheTTL      = time.Hour
)

//go:generate mockgen -source=leavetype_service.go -destination=mock/leavetype_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, includeInactive bool) ([]LeaveTypeResponse, error)
	GetByID(ctx context.Context, id string) (LeaveTypeResponse, error)
	Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires the leave type catalogue. outbox and rdb may be nil.
func NewService(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outbox,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
		now:    time.Now,
	}
}

func (s *service) GetAll(ctx context.Context, includeInactive bool) ([]LeaveTypeResponse, error) {
	if includeInactive {
		types, err := s.repo.FindAll(ctx, false)
		if err != nil {
			return nil, err
		}
		return mapToListResponse(types), nil
	}

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ActiveLeaveTypesKey).Result(); err == nil {
			var resp []LeaveTypeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(ActiveLeaveTypesKey, func() (interface{}, error) {
		types, err := s.repo.FindAll(ctx, true)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(types)
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, ActiveLeaveTypesKey, string(data), activeCacheTTL).Err(); err != nil {
					s.logger.Warn("cache active leave types failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get active leave types failed", zap.Error(err))
		return nil, err
	}

	return v.([]LeaveTypeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveTypeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}

	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*lt), nil
}

func (s *service) Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return LeaveTypeResponse{}, leavetypeerrors.ErrNameRequired
	}

	rule := daycount.RuleForName(name)
	if req.DayCountingRule != nil {
		rule = daycount.Rule(*req.DayCountingRule)
		if !rule.Valid() {
			return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidDayCountingRule
		}
	}

	requiresApproval := true
	if req.RequiresApproval != nil {
		requiresApproval = *req.RequiresApproval
	}

	lt := &LeaveType{
		ID:                 uuid.New(),
		Name:               name,
		Description:        req.Description,
		DefaultDaysPerYear: req.DefaultDaysPerYear,
		RequiresApproval:   requiresApproval,
		DayCountingRule:    rule,
		IsActive:           true,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		log.Error("create leave type begin tx failed", zap.Error(tx.Error))
		return LeaveTypeResponse{}, tx.Error
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, lt); err != nil {
		log.Warn("create leave type persist failed", zap.String("name", name), zap.Error(err))
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(rid, "leave_type", lt.ID.String(),
			events.LeaveTypeCreatedEventType, events.LeaveTypeLifecycleTopic,
			events.LeaveTypeCreatedEvent{
				EventType:          events.LeaveTypeCreatedEventType,
				RequestID:          rid,
				LeaveTypeID:        lt.ID.String(),
				DefaultDaysPerYear: lt.DefaultDaysPerYear,
				Year:               s.now().UTC().Year(),
				OccurredAt:         s.now().UTC(),
			})
		if err != nil {
			return LeaveTypeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("create leave type outbox persist failed", zap.String("leave_type_id", lt.ID.String()), zap.Error(err))
			return LeaveTypeResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Error("create leave type commit failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.invalidateCache(ctx)
	log.Info("create leave type success",
		zap.String("leave_type_id", lt.ID.String()),
		zap.String("name", lt.Name),
		zap.String("rule", string(lt.DayCountingRule)),
	)

	return mapToResponse(*lt), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}

	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return LeaveTypeResponse{}, leavetypeerrors.ErrNameRequired
		}
		lt.Name = name
	}
	if req.Description != nil {
		lt.Description = *req.Description
	}
	if req.DefaultDaysPerYear != nil {
		lt.DefaultDaysPerYear = *req.DefaultDaysPerYear
	}
	if req.RequiresApproval != nil {
		lt.RequiresApproval = *req.RequiresApproval
	}
	if req.DayCountingRule != nil {
		rule := daycount.Rule(*req.DayCountingRule)
		if !rule.Valid() {
			return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidDayCountingRule
		}
		lt.DayCountingRule = rule
	}
	if req.IsActive != nil {
		lt.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, lt); err != nil {
		log.Warn("update leave type failed", zap.String("leave_type_id", id), zap.Error(err))
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	s.invalidateCache(ctx)
	log.Info("update leave type success", zap.String("leave_type_id", id))
	return mapToResponse(*lt), nil
}

// Delete deactivates the type. Rows stay because leaves and balances keep
// referring to them.
func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return leavetypeerrors.ErrInvalidLeaveTypeID
	}

	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	lt.IsActive = false
	if err := s.repo.Update(ctx, lt); err != nil {
		log.Error("deactivate leave type failed", zap.String("leave_type_id", id), zap.Error(err))
		return err
	}

	s.invalidateCache(ctx)
	log.Info("leave type deactivated", zap.String("leave_type_id", id))
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ActiveLeaveTypesKey).Err(); err != nil {
		s.logger.Error("failed to invalidate leave type cache",
			zap.String("key", ActiveLeaveTypesKey),
			zap.Error(err),
		)
	}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leavetypeerrors.ErrLeaveTypeNotFound
	}
	if database.IsUniqueViolation(err, "") {
		return leavetypeerrors.ErrLeaveTypeExists.WithCause(err)
	}
	return err
}

func mapToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:                 lt.ID.String(),
		Name:               lt.Name,
		Description:        lt.Description,
		DefaultDaysPerYear: lt.DefaultDaysPerYear,
		RequiresApproval:   lt.RequiresApproval,
		DayCountingRule:    string(lt.DayCountingRule),
		IsActive:           lt.IsActive,
	}
}

func mapToListResponse(types []LeaveType) []LeaveTypeResponse {
	resp := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		resp[i] = mapToResponse(lt)
	}
	return resp
}
