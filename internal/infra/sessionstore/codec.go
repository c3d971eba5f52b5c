package sessionstore

import (
	"encoding/json"
	"time"

	"vander-key-store/internal/domain/key"
)

// sessionKeyDocument is the serialized form shared by the Redis and Postgres stores.
type sessionKeyDocument struct {
	SessionID string    `json:"sessionId"`
	Key       string    `json:"key"`
	Plan      string    `json:"plan"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toDocument(sk *key.SessionKey) sessionKeyDocument {
	return sessionKeyDocument{
		SessionID: sk.SessionID,
		Key:       sk.Key,
		Plan:      sk.Plan.String(),
		Email:     sk.Email,
		CreatedAt: sk.CreatedAt.UTC(),
	}
}

func (d sessionKeyDocument) toDomain() *key.SessionKey {
	return &key.SessionKey{
		SessionID: d.SessionID,
		Key:       d.Key,
		Plan:      key.Plan(d.Plan),
		Email:     d.Email,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

func encode(sk *key.SessionKey) ([]byte, error) {
	return json.Marshal(toDocument(sk))
}

func decode(raw []byte) (*key.SessionKey, error) {
	var doc sessionKeyDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}
