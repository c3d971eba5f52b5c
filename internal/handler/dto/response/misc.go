package response

import "time"

type WebhookAck struct {
	Received bool `json:"received"`
}

type PingResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
