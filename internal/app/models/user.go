package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID                  int64      `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Name                string     `json:"name" db:"name" example:"John Doe"`                       // User's display name
	Email               string     `json:"email" db:"email" example:"john@gmail.com"`               // User's email address (unique)
	Role                Role       `json:"role" db:"role" example:"publisher"`                      // User's role (user, publisher or admin)
	Password            string     `json:"-" db:"password"`                                         // Hashed password (excluded from JSON)
	ResetPasswordToken  *string    `json:"-" db:"reset_password_token"`                             // Reset token (declared, unused in visible flows)
	ResetPasswordExpire *time.Time `json:"-" db:"reset_password_expire"`                            // Reset token expiry
	CreatedAt           time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}
