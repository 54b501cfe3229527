package ports

import (
	"context"

	"github.com/soulofsrilanka/travel-api/internal/core/domain"
)

// UserRepository defines persistence for registered accounts. Username and
// email uniqueness is enforced by the storage layer's unique indexes; Create
// surfaces violations as domain.ErrDuplicateUsername / ErrDuplicateEmail.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
