package repository

import (
	"context"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase/interfaces"
)

type serviceItem struct {
	ID        string `dynamodbav:"id"`
	Index     string `dynamodbav:"index"`
	Title     string `dynamodbav:"title"`
	Slug      string `dynamodbav:"slug"`
	IsActive  bool   `dynamodbav:"is_active"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI slug-index: slug (string)
type ServiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb DynamoAPI) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, "id", toServiceItem(s), false); err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

// Update replaces the stored service. A missing service yields a zero Service.
func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	written, err := putItem(ctx, r.ddb, r.tableName, "id", toServiceItem(s), true)
	if err != nil || !written {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByKey(ctx, r.ddb, r.tableName, "id", id)
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	it, found, err := getByKey[serviceItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) GetBySlug(ctx context.Context, slug string) (entities.Service, error) {
	items, err := queryIndex[serviceItem](ctx, r.ddb, r.tableName, serviceSlugIndex, "slug", slug)
	if err != nil || len(items) == 0 {
		return entities.Service{}, err
	}
	return fromServiceItem(items[0]), nil
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	items, err := scanTable[serviceItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Service, 0, len(items))
	for _, it := range items {
		out = append(out, fromServiceItem(it))
	}
	return out, nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:        s.ID,
		Index:     s.Index,
		Title:     s.Title,
		Slug:      s.Slug,
		IsActive:  s.IsActive,
		CreatedAt: formatTime(s.CreatedAt),
		UpdatedAt: formatTime(s.UpdatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ID:        it.ID,
		Index:     it.Index,
		Title:     it.Title,
		Slug:      it.Slug,
		IsActive:  it.IsActive,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
