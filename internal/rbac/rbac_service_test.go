package rbac

import (
	"testing"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	policy, err := DefaultPolicy()
	require.NoError(t, err)

	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)

	svc, err := NewService(enforcer, policy)
	require.NoError(t, err)
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		role, resource, action string
		want                   bool
	}{
		{"employee", "leave", "create", true},
		{"employee", "leave", "review", false},
		{"employee", "leave", "read_all", false},
		{"manager", "leave", "create", true},
		{"manager", "leave", "review", true},
		{"manager", "leave", "delete", false},
		{"manager", "balance", "allocate", false},
		{"admin", "leave", "review", true},
		{"admin", "leave", "create", true},
		{"admin", "workflow", "manage", true},
		{"admin", "user", "manage", true},
		{"ghost", "leave", "create", false},
	}

	for _, tt := range tests {
		t.Run(tt.role+" "+tt.resource+":"+tt.action, func(t *testing.T) {
			got, err := svc.Enforce(tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRBACService_Permissions(t *testing.T) {
	svc := newTestService(t)

	employee, err := svc.Permissions("employee")
	require.NoError(t, err)
	assert.Contains(t, employee, "leave:create")
	assert.NotContains(t, employee, "leave:review")

	admin, err := svc.Permissions("admin")
	require.NoError(t, err)
	assert.Contains(t, admin, "leave:create")
	assert.Contains(t, admin, "leave:review")
	assert.Contains(t, admin, "user:manage")
	assert.IsIncreasing(t, admin)
}

func TestParsePolicy(t *testing.T) {
	t.Run("unknown parent", func(t *testing.T) {
		_, err := ParsePolicy([]byte("roles:\n  manager:\n    inherits: [nobody]\n"))
		assert.ErrorContains(t, err, "unknown role")
	})

	t.Run("malformed permission", func(t *testing.T) {
		_, err := ParsePolicy([]byte("roles:\n  employee:\n    permissions: [leave]\n"))
		assert.ErrorContains(t, err, "resource:action")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParsePolicy([]byte("roles: {}\n"))
		assert.Error(t, err)
	})
}
