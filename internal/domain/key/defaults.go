package key

import (
	"errors"
	"strings"
)

var ErrInvalidDefaults = errors.New("invalid issuance defaults")

// Defaults fills fields a paid session may be missing.
// A missing plan is an accepted default, not a validation failure.
type Defaults struct {
	plan  Plan
	email string
}

func NewDefaults(plan, email string) (Defaults, error) {
	p, err := ParsePlan(plan)
	if err != nil {
		return Defaults{}, errors.Join(ErrInvalidDefaults, err)
	}
	if strings.TrimSpace(email) == "" {
		return Defaults{}, ErrInvalidDefaults
	}
	return Defaults{plan: p, email: email}, nil
}

// ResolvePlan returns the parsed plan, or the default when raw is empty or unknown.
// The second return value reports whether the default was applied.
func (d Defaults) ResolvePlan(raw string) (Plan, bool) {
	p, err := ParsePlan(raw)
	if err != nil {
		return d.plan, true
	}
	return p, false
}

// ResolveEmail returns the first non-empty candidate, falling back to the default.
func (d Defaults) ResolveEmail(candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return d.email
}

func (d Defaults) Plan() Plan    { return d.plan }
func (d Defaults) Email() string { return d.email }
