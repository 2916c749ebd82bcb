package dto

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=50" example:"John Doe"`
	Email    string `json:"email" binding:"required,email" example:"john@gmail.com"`
	Password string `json:"password" binding:"required,min=6" example:"123456"`
	Role     string `json:"role" binding:"omitempty,oneof=user publisher" example:"publisher"`
}

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"john@gmail.com"`
	Password string `json:"password" binding:"required" example:"123456"`
}

// TokenResponse carries the signed JWT returned by register and login
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn" example:"3600"` // seconds
}
