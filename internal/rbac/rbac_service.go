package rbac

import (
	"fmt"
	"sort"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

type Service interface {
	Enforce(role, resource, action string) (bool, error)
	Permissions(role string) ([]string, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService loads policy into the enforcer once; roles are static for the
// life of the process.
func NewService(enforcer *casbin.Enforcer, policy Policy, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	s := &service{enforcer: enforcer, logger: l}
	if err := s.load(policy); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) load(policy Policy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	var rules int
	for _, role := range policy.RoleNames() {
		rp := policy.Roles[role]
		for _, parent := range rp.Inherits {
			if _, err := s.enforcer.AddGroupingPolicy(role, parent); err != nil {
				return fmt.Errorf("add grouping %s -> %s: %w", role, parent, err)
			}
		}
		for _, perm := range rp.Permissions {
			rule, err := ParseRule(perm)
			if err != nil {
				return err
			}
			if _, err := s.enforcer.AddPolicy(role, rule.Resource, rule.Action); err != nil {
				return fmt.Errorf("add policy %s %s: %w", role, perm, err)
			}
			rules++
		}
	}

	s.logger.Info("rbac policy loaded",
		zap.Int("roles", len(policy.Roles)),
		zap.Int("rules", rules),
	)
	return nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(role, resource, action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce",
		zap.String("role", role),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// Permissions lists the role's own and inherited grants as resource:action.
func (s *service) Permissions(role string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(rules))
	perms := make([]string, 0, len(rules))
	for _, r := range rules {
		if len(r) < 3 {
			continue
		}
		perm := r[1] + ":" + r[2]
		if _, dup := seen[perm]; dup {
			continue
		}
		seen[perm] = struct{}{}
		perms = append(perms, perm)
	}
	sort.Strings(perms)
	return perms, nil
}
