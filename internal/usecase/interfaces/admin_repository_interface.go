package interfaces

import (
	"context"

	"nishad_gateway/internal/domain/entities"
)

// IAdminRepository abstracts DynamoDB persistence for Admin.
type IAdminRepository interface {
	Create(ctx context.Context, a entities.Admin) (entities.Admin, error)
	GetByID(ctx context.Context, id string) (entities.Admin, error)
	GetByEmail(ctx context.Context, email string) (entities.Admin, error)
}

// ITokenService issues and verifies admin session tokens.
type ITokenService interface {
	Issue(admin entities.Admin) (entities.TokenPair, error)
	ParseAccess(token string) (adminID string, err error)
	ParseRefresh(token string) (adminID string, err error)
}

type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
