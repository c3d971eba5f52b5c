package request

type CreateCheckoutRequest struct {
	Plan string `json:"plan" binding:"required" example:"lifetime"`
}
