package repository

import (
	"context"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase/interfaces"
)

type adminItem struct {
	ID           string `dynamodbav:"id"`
	Email        string `dynamodbav:"email"`
	Name         string `dynamodbav:"name"`
	PasswordHash string `dynamodbav:"password_hash"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// AdminDynamoRepository persists Admin users in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI email-index: email (string)
type AdminDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAdminRepository = (*AdminDynamoRepository)(nil)

func NewAdminDynamoRepository(ddb DynamoAPI) *AdminDynamoRepository {
	return &AdminDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ADMINS_TABLE", defaultAdminsTableName),
	}
}

func (r *AdminDynamoRepository) Create(ctx context.Context, a entities.Admin) (entities.Admin, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, "id", toAdminItem(a), false); err != nil {
		return entities.Admin{}, err
	}
	return a, nil
}

func (r *AdminDynamoRepository) GetByID(ctx context.Context, id string) (entities.Admin, error) {
	it, found, err := getByKey[adminItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.Admin{}, err
	}
	return fromAdminItem(it), nil
}

func (r *AdminDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Admin, error) {
	items, err := queryIndex[adminItem](ctx, r.ddb, r.tableName, adminEmailIndex, "email", email)
	if err != nil || len(items) == 0 {
		return entities.Admin{}, err
	}
	return fromAdminItem(items[0]), nil
}

func toAdminItem(a entities.Admin) adminItem {
	return adminItem{
		ID:           a.ID,
		Email:        a.Email,
		Name:         a.Name,
		PasswordHash: a.PasswordHash,
		CreatedAt:    formatTime(a.CreatedAt),
		UpdatedAt:    formatTime(a.UpdatedAt),
	}
}

func fromAdminItem(it adminItem) entities.Admin {
	return entities.Admin{
		ID:           it.ID,
		Email:        it.Email,
		Name:         it.Name,
		PasswordHash: it.PasswordHash,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
