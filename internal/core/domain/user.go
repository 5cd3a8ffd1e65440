package domain

import (
	"errors"
	"time"
)

const (
	RoleDriver     = "driver"
	RoleDispatcher = "dispatcher"
	RoleSafety     = "safety"
	RoleAdmin      = "admin"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
)

// User models an authenticated actor: a driver's mobile app, a dispatcher
// console, a safety manager, or an admin.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CompanyID    string    `json:"company_id,omitempty"`
	// DriverID links a driver-role account to its telemetry stream.
	DriverID  string    `json:"driver_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
