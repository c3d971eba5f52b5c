package key

import "time"

// MonthlyValidity is how long a monthly key stays valid from creation.
const MonthlyValidity = 30 * 24 * time.Hour

// Record is one issued key as it is written to the shared registry.
// used and hwid are owned by the external redemption system.
type Record struct {
	id        string
	plan      Plan
	used      bool
	hwid      *string
	createdAt time.Time
	expiresAt *time.Time
}

func NewRecord(id string, plan Plan, now time.Time) (*Record, error) {
	if !plan.IsValid() {
		return nil, ErrInvalidPlan
	}

	// the registry stores milliseconds; keep every copy of the timestamp identical
	createdAt := now.UTC().Truncate(time.Millisecond)
	var expiresAt *time.Time
	if plan == PlanMonthly {
		exp := createdAt.Add(MonthlyValidity)
		expiresAt = &exp
	}

	return &Record{
		id:        id,
		plan:      plan,
		createdAt: createdAt,
		expiresAt: expiresAt,
	}, nil
}

func (r *Record) IsExpired(now time.Time) bool {
	return r.expiresAt != nil && now.After(*r.expiresAt)
}

func (r *Record) ID() string            { return r.id }
func (r *Record) Plan() Plan            { return r.plan }
func (r *Record) Used() bool            { return r.used }
func (r *Record) HWID() *string         { return r.hwid }
func (r *Record) CreatedAt() time.Time  { return r.createdAt }
func (r *Record) ExpiresAt() *time.Time { return r.expiresAt }
