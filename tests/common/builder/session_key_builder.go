//go:build unit || e2e

package builder

import (
	"time"

	"vander-key-store/internal/domain/key"
	"vander-key-store/internal/usecase"
)

type SessionKeyBuilder struct {
	SessionID string
	Key       string
	Plan      key.Plan
	Email     string
	CreatedAt time.Time
}

func NewSessionKeyBuilder() *SessionKeyBuilder {
	return &SessionKeyBuilder{
		SessionID: "cs_test_a1b2c3",
		Key:       "VANDER-AB12-CD34-EF56",
		Plan:      key.PlanLifetime,
		Email:     "buyer@example.com",
		CreatedAt: time.Date(2026, time.February, 3, 4, 5, 6, 0, time.UTC),
	}
}

func (b *SessionKeyBuilder) With(mutate func(*SessionKeyBuilder)) *SessionKeyBuilder {
	mutate(b)
	return b
}

func (b *SessionKeyBuilder) Build() *key.SessionKey {
	return &key.SessionKey{
		SessionID: b.SessionID,
		Key:       b.Key,
		Plan:      b.Plan,
		Email:     b.Email,
		CreatedAt: b.CreatedAt,
	}
}

type SessionSnapshotBuilder struct {
	snapshot usecase.SessionSnapshot
}

func NewSessionSnapshotBuilder() *SessionSnapshotBuilder {
	return &SessionSnapshotBuilder{
		snapshot: usecase.SessionSnapshot{
			ID:            "cs_test_a1b2c3",
			Paid:          true,
			Plan:          "lifetime",
			CustomerEmail: "buyer@example.com",
		},
	}
}

func (b *SessionSnapshotBuilder) With(mutate func(*usecase.SessionSnapshot)) *SessionSnapshotBuilder {
	mutate(&b.snapshot)
	return b
}

func (b *SessionSnapshotBuilder) Build() usecase.SessionSnapshot {
	return b.snapshot
}
