package response

import (
	"time"

	"vander-key-store/internal/domain/key"

	"github.com/jinzhu/copier"
)

type KeyResponse struct {
	Key       string    `json:"key"`
	Plan      string    `json:"plan"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromSessionKey(sk *key.SessionKey) (*KeyResponse, error) {
	var resp KeyResponse
	if err := copier.Copy(&resp, sk); err != nil {
		return nil, err
	}
	resp.Plan = sk.Plan.String()
	resp.CreatedAt = sk.CreatedAt.UTC()
	return &resp, nil
}
