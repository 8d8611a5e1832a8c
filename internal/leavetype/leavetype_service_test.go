package leavetype_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/daycount"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/events"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/leavetype"
	leavetypeerrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/leavetype/errors"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/messaging/kafka"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/testutil"

	leavetypeMock "github.com/adeleke-taiwo/HR-LeaveFlow/internal/leavetype/mock"
	kafkaMock "github.com/adeleke-taiwo/HR-LeaveFlow/internal/messaging/kafka/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestLeaveTypeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults rule from name and emits event", func(t *testing.T) {
		db := testutil.NewSQLiteDB(t, &leavetype.LeaveType{})
		rdb, mock := redismock.NewClientMock()
		ctrl := gomock.NewController(t)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)
		svc := leavetype.NewService(db, leavetype.NewRepository(db), outbox, rdb)

		var emitted kafka.OutboxEvent
		outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
		outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				emitted = e
				return nil
			})
		mock.ExpectDel(leavetype.ActiveLeaveTypesKey).SetVal(1)

		resp, err := svc.Create(ctx, leavetype.CreateLeaveTypeRequest{
			Name:               "Maternity Leave",
			DefaultDaysPerYear: 90,
		})
		require.NoError(t, err)
		assert.Equal(t, string(daycount.CalendarDays), resp.DayCountingRule)
		assert.True(t, resp.RequiresApproval)
		assert.True(t, resp.IsActive)

		assert.Equal(t, events.LeaveTypeCreatedEventType, emitted.EventType)
		assert.Equal(t, resp.ID, emitted.AggregateID)

		var payload events.LeaveTypeCreatedEvent
		require.NoError(t, json.Unmarshal(emitted.Payload, &payload))
		assert.Equal(t, 90, payload.DefaultDaysPerYear)
		assert.Equal(t, time.Now().UTC().Year(), payload.Year)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, sqlMock := testutil.NewMockDB(t)
		repo := leavetypeMock.NewMockRepository(ctrl)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)
		svc := leavetype.NewService(db, repo, outbox, nil)

		testutil.ExpectTx(sqlMock, false)
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
		outbox.EXPECT().Create(ctx, gomock.Any()).Return(assert.AnError)

		_, err := svc.Create(ctx, leavetype.CreateLeaveTypeRequest{Name: "Study Leave", DefaultDaysPerYear: 5})
		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		db := testutil.NewSQLiteDB(t, &leavetype.LeaveType{})
		svc := leavetype.NewService(db, leavetype.NewRepository(db), nil, nil)

		_, err := svc.Create(ctx, leavetype.CreateLeaveTypeRequest{Name: "Annual Leave", DefaultDaysPerYear: 20})
		require.NoError(t, err)

		_, err = svc.Create(ctx, leavetype.CreateLeaveTypeRequest{Name: "Annual Leave", DefaultDaysPerYear: 10})
		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeExists)
	})

	t.Run("rejects unknown rule", func(t *testing.T) {
		db := testutil.NewSQLiteDB(t, &leavetype.LeaveType{})
		svc := leavetype.NewService(db, leavetype.NewRepository(db), nil, nil)

		_, err := svc.Create(ctx, leavetype.CreateLeaveTypeRequest{Name: "Odd", DayCountingRule: strPtr("lunar_days")})
		assert.ErrorIs(t, err, leavetypeerrors.ErrInvalidDayCountingRule)
	})
}

func TestLeaveTypeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips database", func(t *testing.T) {
		db := testutil.NewSQLiteDB(t, &leavetype.LeaveType{})
		rdb, mock := redismock.NewClientMock()
		svc := leavetype.NewService(db, leavetype.NewRepository(db), nil, rdb)

		mock.ExpectGet(leavetype.ActiveLeaveTypesKey).SetVal(`[{"id":"x","name":"Cached","isActive":true}]`)

		resp, err := svc.GetAll(ctx, false)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "Cached", resp[0].Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss loads active and stores", func(t *testing.T) {
		db := testutil.NewSQLiteDB(t, &leavetype.LeaveType{})
		require.NoError(t, db.Create(&leavetype.LeaveType{
			ID: uuid.New(), Name: "Sick Leave", DefaultDaysPerYear: 10,
			RequiresApproval: true, DayCountingRule: daycount.BusinessDays, IsActive: true,
		}).Error)
		require.NoError(t, db.Create(&leavetype.LeaveType{
			ID: uuid.New(), Name: "Old Leave", DayCountingRule: daycount.BusinessDays, IsActive: false,
		}).Error)

		rdb, mock := redismock.NewClientMock()
		svc := leavetype.NewService(db, leavetype.NewRepository(db), nil, rdb)

		mock.ExpectGet(leavetype.ActiveLeaveTypesKey).RedisNil()
		mock.Regexp().ExpectSet(leavetype.ActiveLeaveTypesKey, `Sick Leave`, time.Hour).SetVal("OK")

		resp, err := svc.GetAll(ctx, false)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "Sick Leave", resp[0].Name)

		all, err := svc.GetAll(ctx, true)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestLeaveTypeService_GetAll_WithoutCache(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	db, _ := testutil.NewMockDB(t)
	repo := leavetypeMock.NewMockRepository(ctrl)
	svc := leavetype.NewService(db, repo, nil, nil)

	repo.EXPECT().
		FindAll(ctx, true).
		Return([]leavetype.LeaveType{{ID: uuid.New(), Name: "Annual Leave", IsActive: true}}, nil).
		Times(1)

	resp, err := svc.GetAll(ctx, false)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Annual Leave", resp[0].Name)

	repo.EXPECT().FindAll(ctx, false).Return(nil, gorm.ErrInvalidDB)
	_, err = svc.GetAll(ctx, true)
	assert.ErrorIs(t, err, gorm.ErrInvalidDB)
}

func TestLeaveTypeService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t, &leavetype.LeaveType{})
	svc := leavetype.NewService(db, leavetype.NewRepository(db), nil, nil)

	created, err := svc.Create(ctx, leavetype.CreateLeaveTypeRequest{Name: "Study Leave", DefaultDaysPerYear: 5})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, leavetype.UpdateLeaveTypeRequest{
		DefaultDaysPerYear: intPtr(8),
		RequiresApproval:   boolPtr(false),
		DayCountingRule:    strPtr(string(daycount.CalendarDays)),
	})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.DefaultDaysPerYear)
	assert.False(t, updated.RequiresApproval)
	assert.Equal(t, "calendar_days", updated.DayCountingRule)

	require.NoError(t, svc.Delete(ctx, created.ID))
	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = svc.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNotFound)

	_, err = svc.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, leavetypeerrors.ErrInvalidLeaveTypeID)
}
