package key

import (
	"errors"
	"strings"
)

var ErrInvalidPlan = errors.New("invalid plan")

// Plan is the purchased product tier. It decides price and expiry.
type Plan string

const (
	PlanLifetime Plan = "lifetime"
	PlanMonthly  Plan = "monthly"
)

func ParsePlan(s string) (Plan, error) {
	switch Plan(strings.TrimSpace(s)) {
	case PlanLifetime:
		return PlanLifetime, nil
	case PlanMonthly:
		return PlanMonthly, nil
	default:
		return "", ErrInvalidPlan
	}
}

func (p Plan) String() string {
	return string(p)
}

func (p Plan) IsValid() bool {
	return p == PlanLifetime || p == PlanMonthly
}
