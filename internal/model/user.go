package model

import "time"

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleDoctor     UserRole = "doctor"
	RoleTechnician UserRole = "technician"
)

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Username    string    `json:"username"`
	Role        UserRole  `json:"role"`
}

type CreateUserRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=80"`
	Password string   `json:"password" binding:"required,min=8"`
	Role     UserRole `json:"role" binding:"required,oneof=admin doctor technician"`
}
