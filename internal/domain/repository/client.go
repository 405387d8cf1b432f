package repository

import (
	"context"

	"github.com/orderdesk/orderdesk/internal/domain/model"
)

// ClientRepository describes persistence operations for client accounts.
type ClientRepository interface {
	Create(ctx context.Context, username, email, passwordHash string, role model.Role, active bool) (*model.Client, error)
	GetByUsername(ctx context.Context, username string) (*model.Client, error)
	GetByEmail(ctx context.Context, email string) (*model.Client, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*model.Client, error)
	GetByID(ctx context.Context, id int64) (*model.Client, error)
}
