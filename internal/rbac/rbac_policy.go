package rbac

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicy []byte

type RolePolicy struct {
	Inherits    []string `yaml:"inherits"`
	Permissions []string `yaml:"permissions"`
}

type Policy struct {
	Roles map[string]RolePolicy `yaml:"roles"`
}

// Rule is one resource:action grant.
type Rule struct {
	Resource string
	Action   string
}

func ParsePolicy(data []byte) (Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}, fmt.Errorf("parse rbac policy: %w", err)
	}
	if len(p.Roles) == 0 {
		return Policy{}, fmt.Errorf("rbac policy has no roles")
	}

	for role, rp := range p.Roles {
		for _, parent := range rp.Inherits {
			if _, ok := p.Roles[parent]; !ok {
				return Policy{}, fmt.Errorf("role %q inherits unknown role %q", role, parent)
			}
		}
		for _, perm := range rp.Permissions {
			if _, err := ParseRule(perm); err != nil {
				return Policy{}, fmt.Errorf("role %q: %w", role, err)
			}
		}
	}
	return p, nil
}

// DefaultPolicy is the policy compiled into the binary.
func DefaultPolicy() (Policy, error) {
	return ParsePolicy(defaultPolicy)
}

func ParseRule(perm string) (Rule, error) {
	resource, action, ok := strings.Cut(perm, ":")
	if !ok || resource == "" || action == "" {
		return Rule{}, fmt.Errorf("invalid permission %q, want resource:action", perm)
	}
	return Rule{Resource: resource, Action: action}, nil
}

// RoleNames returns the roles in a stable order.
func (p Policy) RoleNames() []string {
	names := make([]string, 0, len(p.Roles))
	for name := range p.Roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
