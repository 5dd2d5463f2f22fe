package model

// ValidateTokenRequest is the payload for POST /auth/validate.
type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}
