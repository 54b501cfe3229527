package ports

import (
	"context"

	"github.com/soulofsrilanka/travel-api/internal/core/domain"
)

// RegisterInput carries everything needed to create a new account.
type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	Role         string // defaults to "user" when empty
	BusinessName string // required iff Role == "vendor"
}

// AuthService implements account creation and credential verification. Both
// operations return a signed session token so a fresh registration is an
// immediate login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
