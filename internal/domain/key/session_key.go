package key

import "time"

// SessionKey associates a paid checkout session with the key issued for it.
type SessionKey struct {
	SessionID string
	Key       string
	Plan      Plan
	Email     string
	CreatedAt time.Time
}

func NewSessionKey(sessionID string, record *Record, email string) *SessionKey {
	return &SessionKey{
		SessionID: sessionID,
		Key:       record.ID(),
		Plan:      record.Plan(),
		Email:     email,
		CreatedAt: record.CreatedAt(),
	}
}
