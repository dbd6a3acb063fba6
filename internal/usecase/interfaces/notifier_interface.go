package interfaces

import (
	"context"

	"nishad_gateway/internal/domain/entities"
)

// ILeadNotifier tells the sales team about a freshly captured lead.
type ILeadNotifier interface {
	NotifyNewLead(ctx context.Context, lead entities.Lead) error
}
