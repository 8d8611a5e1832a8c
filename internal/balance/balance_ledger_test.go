package balance_test

import (
	"context"
	"sync"
	"testing"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/balance"
	balanceerrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/balance/errors"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/testutil"

	balanceMock "github.com/adeleke-taiwo/HR-LeaveFlow/internal/balance/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newBalanceDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.NewSQLiteDB(t, &balance.LeaveBalance{})
	require.NoError(t, db.Exec(`CREATE TABLE users (
		id TEXT PRIMARY KEY, email TEXT, is_active BOOLEAN NOT NULL, archived_at DATETIME)`).Error)
	require.NoError(t, db.Exec(`CREATE TABLE leave_types (
		id TEXT PRIMARY KEY, name TEXT NOT NULL, default_days_per_year INT NOT NULL, is_active BOOLEAN NOT NULL)`).Error)
	return db
}

func seedBalance(t *testing.T, db *gorm.DB, allocated, used, pending int) balance.LeaveBalance {
	t.Helper()
	b := balance.LeaveBalance{
		ID: uuid.New(), UserID: uuid.New(), LeaveTypeID: uuid.New(), Year: 2024,
		Allocated: allocated, Used: used, Pending: pending,
	}
	require.NoError(t, db.Create(&b).Error)
	return b
}

func reload(t *testing.T, db *gorm.DB, id uuid.UUID) balance.LeaveBalance {
	t.Helper()
	var b balance.LeaveBalance
	require.NoError(t, db.First(&b, "id = ?", id).Error)
	return b
}

func TestLedger_ReserveCommitRelease(t *testing.T) {
	ctx := context.Background()
	db := newBalanceDB(t)
	ledger := balance.NewLedger(balance.NewRepository(db), false)
	b := seedBalance(t, db, 10, 0, 0)

	require.NoError(t, ledger.Reserve(ctx, b.Key(), 4))
	got := reload(t, db, b.ID)
	assert.Equal(t, 4, got.Pending)

	require.NoError(t, ledger.Commit(ctx, b.Key(), 4))
	got = reload(t, db, b.ID)
	assert.Equal(t, 0, got.Pending)
	assert.Equal(t, 4, got.Used)

	require.NoError(t, ledger.Reserve(ctx, b.Key(), 3))
	require.NoError(t, ledger.Release(ctx, b.Key(), 3))
	got = reload(t, db, b.ID)
	assert.Equal(t, 0, got.Pending)

	require.NoError(t, ledger.ReverseUsed(ctx, b.Key(), 4))
	got = reload(t, db, b.ID)
	assert.Equal(t, 0, got.Used)
}

func TestLedger_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	db := newBalanceDB(t)
	ledger := balance.NewLedger(balance.NewRepository(db), false)
	b := seedBalance(t, db, 10, 0, 0)

	err := ledger.Reserve(ctx, b.Key(), 11)
	assert.ErrorIs(t, err, balanceerrors.ErrInsufficientBalance)

	got := reload(t, db, b.ID)
	assert.Equal(t, 0, got.Pending)
	assert.Equal(t, 0, got.Used)
}

func TestLedger_MissingRow(t *testing.T) {
	ctx := context.Background()

	t.Run("reserve opens the year from the leave type default", func(t *testing.T) {
		db := newBalanceDB(t)
		ledger := balance.NewLedger(balance.NewRepository(db), false)
		typeID := uuid.New()
		require.NoError(t, db.Exec(`INSERT INTO leave_types (id, name, default_days_per_year, is_active) VALUES (?, ?, ?, ?)`,
			typeID, "Annual Leave", 12, true).Error)
		key := balance.Key{UserID: uuid.New(), LeaveTypeID: typeID, Year: 2025}

		require.NoError(t, ledger.Reserve(ctx, key, 2))

		var b balance.LeaveBalance
		require.NoError(t, db.Where("user_id = ? AND leave_type_id = ? AND year = ?", key.UserID, typeID, 2025).Take(&b).Error)
		assert.Equal(t, 12, b.Allocated)
		assert.Equal(t, 2, b.Pending)

		assert.ErrorIs(t, ledger.Reserve(ctx, key, 11), balanceerrors.ErrInsufficientBalance)
		assert.Equal(t, 2, reload(t, db, b.ID).Pending)
	})

	t.Run("reserve on an unknown leave type", func(t *testing.T) {
		db := newBalanceDB(t)
		ledger := balance.NewLedger(balance.NewRepository(db), false)
		key := balance.Key{UserID: uuid.New(), LeaveTypeID: uuid.New(), Year: 2024}

		assert.ErrorIs(t, ledger.Reserve(ctx, key, 1), balanceerrors.ErrBalanceNotAllocated)
	})

	t.Run("settling a removed row is skipped", func(t *testing.T) {
		db := newBalanceDB(t)
		ledger := balance.NewLedger(balance.NewRepository(db), false)
		key := balance.Key{UserID: uuid.New(), LeaveTypeID: uuid.New(), Year: 2024}

		assert.NoError(t, ledger.Commit(ctx, key, 3))
		assert.NoError(t, ledger.Release(ctx, key, 3))
		assert.NoError(t, ledger.ReverseUsed(ctx, key, 3))

		var n int64
		require.NoError(t, db.Model(&balance.LeaveBalance{}).Count(&n).Error)
		assert.Zero(t, n)
	})

	t.Run("unallocated means unlimited", func(t *testing.T) {
		db := newBalanceDB(t)
		lenient := balance.NewLedger(balance.NewRepository(db), true)
		key := balance.Key{UserID: uuid.New(), LeaveTypeID: uuid.New(), Year: 2024}

		assert.NoError(t, lenient.Reserve(ctx, key, 100))
		assert.NoError(t, lenient.Commit(ctx, key, 100))
	})
}

func TestLedger_RollsBackWithTransaction(t *testing.T) {
	ctx := context.Background()
	db := newBalanceDB(t)
	ledger := balance.NewLedger(balance.NewRepository(db), false)
	b := seedBalance(t, db, 10, 0, 0)

	tx := db.Begin()
	require.NoError(t, ledger.WithTx(tx).Reserve(ctx, b.Key(), 5))
	require.NoError(t, tx.Rollback().Error)

	assert.Equal(t, 0, reload(t, db, b.ID).Pending)
}

func TestLedger_ConcurrentReservesNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	db := newBalanceDB(t)
	ledger := balance.NewLedger(balance.NewRepository(db), false)
	b := seedBalance(t, db, 10, 0, 0)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Transaction(func(tx *gorm.DB) error {
				return ledger.WithTx(tx).Reserve(ctx, b.Key(), 3)
			})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	got := reload(t, db, b.ID)
	assert.Equal(t, 3, accepted)
	assert.Equal(t, 9, got.Pending)
	assert.LessOrEqual(t, got.Used+got.Pending, got.Allocated)
}

func TestLedger_Mocked(t *testing.T) {
	ctx := context.Background()
	key := balance.Key{UserID: uuid.New(), LeaveTypeID: uuid.New(), Year: 2025}

	setup := func(t *testing.T) (balance.Ledger, *balanceMock.MockRepository) {
		ctrl := gomock.NewController(t)
		repo := balanceMock.NewMockRepository(ctrl)
		return balance.NewLedger(repo, false), repo
	}

	t.Run("reserve opens a missing year then locks it", func(t *testing.T) {
		ledger, repo := setup(t)
		opened := &balance.LeaveBalance{ID: uuid.New(), UserID: key.UserID, LeaveTypeID: key.LeaveTypeID, Year: 2025, Allocated: 12}

		gomock.InOrder(
			repo.EXPECT().FindByKeyForUpdate(ctx, key).Return(nil, gorm.ErrRecordNotFound),
			repo.EXPECT().DefaultDaysPerYear(ctx, key.LeaveTypeID).Return(12, nil),
			repo.EXPECT().
				CreateMissing(ctx, gomock.Len(1)).
				DoAndReturn(func(_ context.Context, rows []balance.LeaveBalance) (int64, error) {
					assert.Equal(t, key, rows[0].Key())
					assert.Equal(t, 12, rows[0].Allocated)
					return 1, nil
				}),
			repo.EXPECT().FindByKeyForUpdate(ctx, key).Return(opened, nil),
			repo.EXPECT().
				UpdateCounters(ctx, opened).
				DoAndReturn(func(_ context.Context, b *balance.LeaveBalance) error {
					assert.Equal(t, 3, b.Pending)
					return nil
				}),
		)

		require.NoError(t, ledger.Reserve(ctx, key, 3))
	})

	t.Run("settling a missing row writes nothing", func(t *testing.T) {
		ledger, repo := setup(t)

		repo.EXPECT().FindByKeyForUpdate(ctx, key).Return(nil, gorm.ErrRecordNotFound).Times(3)
		repo.EXPECT().UpdateCounters(gomock.Any(), gomock.Any()).Times(0)
		repo.EXPECT().CreateMissing(gomock.Any(), gomock.Any()).Times(0)

		assert.NoError(t, ledger.Commit(ctx, key, 2))
		assert.NoError(t, ledger.Release(ctx, key, 2))
		assert.NoError(t, ledger.ReverseUsed(ctx, key, 2))
	})

	t.Run("lookup errors still surface", func(t *testing.T) {
		ledger, repo := setup(t)

		repo.EXPECT().FindByKeyForUpdate(ctx, key).Return(nil, gorm.ErrInvalidTransaction)

		assert.ErrorIs(t, ledger.Release(ctx, key, 2), gorm.ErrInvalidTransaction)
	})
}
