package request

type LoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
