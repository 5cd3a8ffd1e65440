package ports

import (
	"context"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// RegisterInput carries a new account request.
type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	Role      string
	CompanyID string
	DriverID  string
}

// AuthService issues and validates identities for the telematics API.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
