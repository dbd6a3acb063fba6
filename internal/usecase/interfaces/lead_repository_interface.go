package interfaces

import (
	"context"

	"nishad_gateway/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead.
//
// Missing leads are reported as a zero Lead and a nil error.
type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
}
