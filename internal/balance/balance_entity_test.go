package balance

import (
	"testing"

	balanceerrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/balance/errors"

	"github.com/stretchr/testify/assert"
)

func TestLeaveBalance_Reserve(t *testing.T) {
	t.Run("within allocation", func(t *testing.T) {
		b := LeaveBalance{Allocated: 10, Used: 3, Pending: 2}
		assert.NoError(t, b.Reserve(5))
		assert.Equal(t, 7, b.Pending)
		assert.Equal(t, 0, b.Remaining())
	})

	t.Run("overdraw leaves balance unchanged", func(t *testing.T) {
		b := LeaveBalance{Allocated: 10}
		err := b.Reserve(11)
		assert.ErrorIs(t, err, balanceerrors.ErrInsufficientBalance)
		assert.Equal(t, LeaveBalance{Allocated: 10}, b)
	})
}

func TestLeaveBalance_Resolve(t *testing.T) {
	b := LeaveBalance{Allocated: 20, Pending: 8}

	assert.False(t, b.Commit(5))
	assert.Equal(t, 3, b.Pending)
	assert.Equal(t, 5, b.Used)

	assert.False(t, b.Release(3))
	assert.Equal(t, 0, b.Pending)

	assert.False(t, b.ReverseUsed(5))
	assert.Equal(t, 0, b.Used)
	assert.Equal(t, 20, b.Remaining())
}

func TestLeaveBalance_DecrementsClampAtZero(t *testing.T) {
	b := LeaveBalance{Allocated: 5, Used: 1, Pending: 2}

	assert.True(t, b.Release(4))
	assert.Equal(t, 0, b.Pending)

	assert.True(t, b.Commit(3))
	assert.Equal(t, 0, b.Pending)
	assert.Equal(t, 4, b.Used)

	assert.True(t, b.ReverseUsed(9))
	assert.Equal(t, 0, b.Used)
}
