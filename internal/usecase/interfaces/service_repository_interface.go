package interfaces

import (
	"context"

	"nishad_gateway/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for Service.
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Service, error)
	GetBySlug(ctx context.Context, slug string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
}

// ISubServiceRepository abstracts DynamoDB persistence for SubService.
type ISubServiceRepository interface {
	Create(ctx context.Context, s entities.SubService) (entities.SubService, error)
	Update(ctx context.Context, s entities.SubService) (entities.SubService, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.SubService, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.SubService, error)
}

// ISubServiceContentRepository stores the single content document of a subservice.
type ISubServiceContentRepository interface {
	Get(ctx context.Context, subServiceID string) (entities.SubServiceContent, error)
	Put(ctx context.Context, c entities.SubServiceContent) (entities.SubServiceContent, error)
	Delete(ctx context.Context, subServiceID string) error
}
