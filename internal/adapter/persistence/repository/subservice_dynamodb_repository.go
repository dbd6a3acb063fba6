package repository

import (
	"context"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase/interfaces"
)

type subServiceItem struct {
	ID          string `dynamodbav:"id"`
	ServiceID   string `dynamodbav:"service_id"`
	Title       string `dynamodbav:"title"`
	Slug        string `dynamodbav:"slug"`
	Description string `dynamodbav:"description"`
	Image       string `dynamodbav:"image"`
	IsActive    bool   `dynamodbav:"is_active"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// SubServiceDynamoRepository persists SubService entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI service_id-index: service_id (string)
type SubServiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISubServiceRepository = (*SubServiceDynamoRepository)(nil)

func NewSubServiceDynamoRepository(ddb DynamoAPI) *SubServiceDynamoRepository {
	return &SubServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBSERVICES_TABLE", defaultSubServicesTableName),
	}
}

func (r *SubServiceDynamoRepository) Create(ctx context.Context, s entities.SubService) (entities.SubService, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, "id", toSubServiceItem(s), false); err != nil {
		return entities.SubService{}, err
	}
	return s, nil
}

func (r *SubServiceDynamoRepository) Update(ctx context.Context, s entities.SubService) (entities.SubService, error) {
	written, err := putItem(ctx, r.ddb, r.tableName, "id", toSubServiceItem(s), true)
	if err != nil || !written {
		return entities.SubService{}, err
	}
	return s, nil
}

func (r *SubServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByKey(ctx, r.ddb, r.tableName, "id", id)
}

func (r *SubServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.SubService, error) {
	it, found, err := getByKey[subServiceItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.SubService{}, err
	}
	return fromSubServiceItem(it), nil
}

func (r *SubServiceDynamoRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entities.SubService, error) {
	items, err := queryIndex[subServiceItem](ctx, r.ddb, r.tableName, subServiceParentIndex, "service_id", serviceID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.SubService, 0, len(items))
	for _, it := range items {
		out = append(out, fromSubServiceItem(it))
	}
	return out, nil
}

func toSubServiceItem(s entities.SubService) subServiceItem {
	return subServiceItem{
		ID:          s.ID,
		ServiceID:   s.ServiceID,
		Title:       s.Title,
		Slug:        s.Slug,
		Description: s.Description,
		Image:       s.Image,
		IsActive:    s.IsActive,
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}

func fromSubServiceItem(it subServiceItem) entities.SubService {
	return entities.SubService{
		ID:          it.ID,
		ServiceID:   it.ServiceID,
		Title:       it.Title,
		Slug:        it.Slug,
		Description: it.Description,
		Image:       it.Image,
		IsActive:    it.IsActive,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
