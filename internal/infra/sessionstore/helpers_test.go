//go:build unit || e2e

package sessionstore_test

import (
	"time"

	"vander-key-store/internal/domain/key"
)

func sampleSessionKey(sessionID string) *key.SessionKey {
	return &key.SessionKey{
		SessionID: sessionID,
		Key:       "VANDER-AB12-CD34-EF56",
		Plan:      key.PlanMonthly,
		Email:     "buyer@example.com",
		CreatedAt: time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC),
	}
}
