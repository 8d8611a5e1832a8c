package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/contextutil"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/database"
	usererrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	passwordCost     = 12
	defaultPageLimit = 20
	maxPageLimit     = 100
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListUsersFilter) ([]UserResponse, int64, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Me(ctx context.Context, identity auth.Identity) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	UpdateRole(ctx context.Context, id string, role string) (UserResponse, error)
	ResetPassword(ctx context.Context, id string, newPassword string) error
	Archive(ctx context.Context, actor auth.Identity, id string) error
}

// BalanceSeeder keeps the one-row-per-active-leave-type rule for users.
type BalanceSeeder interface {
	SeedDefaults(ctx context.Context, tx *gorm.DB, userID uuid.UUID, year int) (int64, error)
	RemoveForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	balances BalanceSeeder
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(db *gorm.DB, repo Repository, balances BalanceSeeder, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		balances: balances,
		logger:   l,
		now:      time.Now,
	}
}

func (s *service) GetAll(ctx context.Context, filter ListUsersFilter) ([]UserResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	users, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) Me(ctx context.Context, identity auth.Identity) (UserResponse, error) {
	return s.GetByID(ctx, identity.UserID.String())
}

// Create registers a user and seeds their balances for the current year in
// the same transaction.
func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	role := auth.Role(req.Role)
	if req.Role == "" {
		role = auth.RoleEmployee
	}
	if !role.Valid() {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	u := &User{
		ID:        uuid.New(),
		Email:     email,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Role:      string(role),
		IsActive:  true,
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}
	u.PasswordHash = string(hashedPassword)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return UserResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsByEmail(ctx, email)
	if err != nil {
		return UserResponse{}, err
	}
	if exists {
		return UserResponse{}, usererrors.ErrUserAlreadyExists
	}

	if req.DepartmentID != nil && *req.DepartmentID != "" {
		deptID, err := s.requireDepartment(ctx, qtx, *req.DepartmentID)
		if err != nil {
			return UserResponse{}, err
		}
		u.DepartmentID = &deptID
	}

	if err := qtx.Create(ctx, u); err != nil {
		l.Warn("create user failed", zap.String("email", email), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	seeded, err := s.balances.SeedDefaults(ctx, tx, u.ID, s.now().Year())
	if err != nil {
		l.Error("seed default balances failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return UserResponse{}, err
	}

	created, err := qtx.FindByID(ctx, u.ID.String())
	if err != nil {
		return UserResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	l.Info("user created",
		zap.String("user_id", u.ID.String()),
		zap.String("role", u.Role),
		zap.Int64("balances_seeded", seeded),
	)
	return mapToResponse(*created), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	return s.mutate(ctx, id, func(qtx Repository, u *User) error {
		if req.FirstName != nil {
			u.FirstName = strings.TrimSpace(*req.FirstName)
		}
		if req.LastName != nil {
			u.LastName = strings.TrimSpace(*req.LastName)
		}
		switch {
		case req.ClearDepartment:
			u.DepartmentID = nil
		case req.DepartmentID != nil && *req.DepartmentID != "":
			deptID, err := s.requireDepartment(ctx, qtx, *req.DepartmentID)
			if err != nil {
				return err
			}
			u.DepartmentID = &deptID
		}
		return nil
	})
}

func (s *service) UpdateRole(ctx context.Context, id string, role string) (UserResponse, error) {
	r := auth.Role(role)
	if !r.Valid() {
		return UserResponse{}, usererrors.ErrInvalidRole
	}
	return s.mutate(ctx, id, func(_ Repository, u *User) error {
		u.Role = string(r)
		return nil
	})
}

func (s *service) ResetPassword(ctx context.Context, id string, newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), passwordCost)
	if err != nil {
		return err
	}
	_, err = s.mutate(ctx, id, func(_ Repository, u *User) error {
		u.PasswordHash = string(hashed)
		return nil
	})
	return err
}

// Archive deactivates a user for good and drops their balances. Users with
// leave still awaiting a decision cannot be archived.
func (s *service) Archive(ctx context.Context, actor auth.Identity, id string) error {
	l := contextutil.GetLogger(ctx, s.logger)

	userID, err := uuid.Parse(id)
	if err != nil {
		return usererrors.ErrInvalidUserID
	}
	if userID == actor.UserID {
		return usererrors.ErrCannotArchiveSelf
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if u.Archived() {
		return usererrors.ErrUserArchived
	}

	pending, err := qtx.CountPendingLeaves(ctx, id)
	if err != nil {
		return err
	}
	if pending > 0 {
		return usererrors.ErrUserHasPendingLeaves
	}

	removed, err := s.balances.RemoveForUser(ctx, tx, userID)
	if err != nil {
		return err
	}

	u.Archive(s.now().UTC())
	if err := qtx.Save(ctx, u); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	l.Info("user archived",
		zap.String("user_id", id),
		zap.String("archived_by", actor.UserID.String()),
		zap.Int64("balances_removed", removed),
	)
	return nil
}

func (s *service) mutate(ctx context.Context, id string, apply func(qtx Repository, u *User) error) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return UserResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	if u.Archived() {
		return UserResponse{}, usererrors.ErrUserArchived
	}

	if err := apply(qtx, u); err != nil {
		return UserResponse{}, err
	}
	if err := qtx.Save(ctx, u); err != nil {
		return UserResponse{}, err
	}

	updated, err := qtx.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*updated), nil
}

func (s *service) requireDepartment(ctx context.Context, qtx Repository, id string) (uuid.UUID, error) {
	deptID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, usererrors.ErrDepartmentNotFound
	}
	ok, err := qtx.DepartmentExists(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, usererrors.ErrDepartmentNotFound
	}
	return deptID, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}
	if database.IsUniqueViolation(err, "uq_users_email") {
		return usererrors.ErrUserAlreadyExists.WithCause(err)
	}
	return err
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.DepartmentID != nil {
		id := u.DepartmentID.String()
		resp.DepartmentID = &id
	}
	if u.Department != nil {
		resp.Department = &DepartmentSummary{ID: u.Department.ID.String(), Name: u.Department.Name}
	}
	if u.ArchivedAt != nil {
		at := u.ArchivedAt.Format(time.RFC3339)
		resp.ArchivedAt = &at
	}
	return resp
}
