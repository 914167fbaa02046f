package model

// User role constants
const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
)

// User represents a system account. Users are created by the seed tool and
// are never updated or deleted through the API.
type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
	Name         string `json:"name" db:"name"`
	IsActive     bool   `json:"is_active" db:"is_active"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
