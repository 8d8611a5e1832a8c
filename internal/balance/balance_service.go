package balance

import (
	"context"
	"errors"
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth"
	balanceerrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/balance/errors"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=balance_service.go -destination=mock/balance_service_mock.go -package=mock
type Service interface {
	GetMyBalances(ctx context.Context, identity auth.Identity) ([]BalanceResponse, error)
	GetUserBalances(ctx context.Context, userID string) ([]BalanceResponse, error)
	Allocate(ctx context.Context, req AllocateRequest) ([]BalanceResponse, error)
	Adjust(ctx context.Context, id string, req AdjustRequest) (BalanceResponse, error)
	SeedDefaults(ctx context.Context, tx *gorm.DB, userID uuid.UUID, year int) (int64, error)
	SeedLeaveType(ctx context.Context, leaveTypeID uuid.UUID, defaultDays, year int) (int64, error)
	RemoveForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("balance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.service")
	}
	return &service{db: db, repo: repo, logger: l, now: time.Now}
}

func (s *service) GetMyBalances(ctx context.Context, identity auth.Identity) ([]BalanceResponse, error) {
	rows, err := s.repo.ListByUserYear(ctx, identity.UserID.String(), s.now().Year())
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetUserBalances(ctx context.Context, userID string) ([]BalanceResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, balanceerrors.ErrInvalidID
	}

	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, balanceerrors.ErrUserNotFound
	}

	rows, err := s.repo.ListByUserYear(ctx, userID, s.now().Year())
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// Allocate sets allocated per leave type for one user and year, creating
// missing rows. Used and pending are left alone.
func (s *service) Allocate(ctx context.Context, req AllocateRequest) ([]BalanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, balanceerrors.ErrInvalidID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	exists, err := repo.UserExists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, balanceerrors.ErrUserNotFound
	}

	for _, a := range req.Allocations {
		if a.Allocated < 0 {
			return nil, balanceerrors.ErrNegativeAmount
		}
		leaveTypeID, err := uuid.Parse(a.LeaveTypeID)
		if err != nil {
			return nil, balanceerrors.ErrInvalidID
		}
		ok, err := repo.LeaveTypeExists(ctx, a.LeaveTypeID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, balanceerrors.ErrLeaveTypeNotFound
		}

		if err := repo.UpsertAllocated(ctx, &LeaveBalance{
			ID:          uuid.New(),
			UserID:      userID,
			LeaveTypeID: leaveTypeID,
			Year:        req.Year,
			Allocated:   a.Allocated,
		}); err != nil {
			log.Error("allocate balance failed",
				zap.String("user_id", req.UserID),
				zap.String("leave_type_id", a.LeaveTypeID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	rows, err := repo.ListByUserYear(ctx, req.UserID, req.Year)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	log.Info("balances allocated",
		zap.String("user_id", req.UserID),
		zap.Int("year", req.Year),
		zap.Int("allocations", len(req.Allocations)),
	)
	return mapToListResponse(rows), nil
}

// Adjust is an administrative override; only non-negativity is checked.
func (s *service) Adjust(ctx context.Context, id string, req AdjustRequest) (BalanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return BalanceResponse{}, balanceerrors.ErrInvalidID
	}
	for _, v := range []*int{req.Allocated, req.Used, req.Pending} {
		if v != nil && *v < 0 {
			return BalanceResponse{}, balanceerrors.ErrNegativeAmount
		}
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return BalanceResponse{}, tx.Error
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	b, err := repo.FindByIDForUpdate(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return BalanceResponse{}, balanceerrors.ErrBalanceNotFound
	}
	if err != nil {
		return BalanceResponse{}, err
	}

	if req.Allocated != nil {
		b.Allocated = *req.Allocated
	}
	if req.Used != nil {
		b.Used = *req.Used
	}
	if req.Pending != nil {
		b.Pending = *req.Pending
	}

	if err := repo.UpdateCounters(ctx, b); err != nil {
		return BalanceResponse{}, err
	}

	updated, err := repo.FindByID(ctx, id)
	if err != nil {
		return BalanceResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return BalanceResponse{}, err
	}

	log.Info("balance adjusted",
		zap.String("balance_id", id),
		zap.Int("allocated", b.Allocated),
		zap.Int("used", b.Used),
		zap.Int("pending", b.Pending),
	)
	return mapToResponse(*updated), nil
}

// SeedDefaults gives a user one row per active leave type for year,
// allocated at the type's default. Existing rows are kept. Runs on the
// caller's transaction.
func (s *service) SeedDefaults(ctx context.Context, tx *gorm.DB, userID uuid.UUID, year int) (int64, error) {
	repo := s.repo.WithTx(tx)

	types, err := repo.ActiveLeaveTypes(ctx)
	if err != nil {
		return 0, err
	}

	rows := make([]LeaveBalance, 0, len(types))
	for _, lt := range types {
		rows = append(rows, LeaveBalance{
			ID:          uuid.New(),
			UserID:      userID,
			LeaveTypeID: lt.ID,
			Year:        year,
			Allocated:   lt.DefaultDaysPerYear,
		})
	}
	return repo.CreateMissing(ctx, rows)
}

// SeedLeaveType backfills a newly created leave type for every active user.
// Safe to run more than once.
func (s *service) SeedLeaveType(ctx context.Context, leaveTypeID uuid.UUID, defaultDays, year int) (int64, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	userIDs, err := s.repo.ActiveUserIDs(ctx)
	if err != nil {
		return 0, err
	}

	rows := make([]LeaveBalance, 0, len(userIDs))
	for _, uid := range userIDs {
		rows = append(rows, LeaveBalance{
			ID:          uuid.New(),
			UserID:      uid,
			LeaveTypeID: leaveTypeID,
			Year:        year,
			Allocated:   defaultDays,
		})
	}

	created, err := s.repo.CreateMissing(ctx, rows)
	if err != nil {
		log.Error("seed leave type balances failed", zap.String("leave_type_id", leaveTypeID.String()), zap.Error(err))
		return 0, err
	}

	log.Info("leave type balances seeded",
		zap.String("leave_type_id", leaveTypeID.String()),
		zap.Int("year", year),
		zap.Int64("created", created),
	)
	return created, nil
}

func (s *service) RemoveForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	return s.repo.WithTx(tx).DeleteByUser(ctx, userID.String())
}

func mapToResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		ID:          b.ID.String(),
		UserID:      b.UserID.String(),
		LeaveTypeID: b.LeaveTypeID.String(),
		LeaveType: LeaveTypeSummary{
			ID:   b.LeaveTypeID.String(),
			Name: b.LeaveTypeName,
		},
		Year:      b.Year,
		Allocated: b.Allocated,
		Used:      b.Used,
		Pending:   b.Pending,
		Remaining: b.Remaining(),
	}
}

func mapToListResponse(rows []LeaveBalance) []BalanceResponse {
	resp := make([]BalanceResponse, len(rows))
	for i, b := range rows {
		resp[i] = mapToResponse(b)
	}
	return resp
}
