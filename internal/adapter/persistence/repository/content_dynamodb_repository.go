package repository

import (
	"context"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ContentDynamoRepository stores one SubServiceContent document per
// subservice. The entity carries its own dynamodbav tags, so it is
// marshalled as is.
//
// Table requirements:
//   - PK: subservice_id (string)
type ContentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISubServiceContentRepository = (*ContentDynamoRepository)(nil)

func NewContentDynamoRepository(ddb DynamoAPI) *ContentDynamoRepository {
	return &ContentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTENT_TABLE", defaultContentTableName),
	}
}

func (r *ContentDynamoRepository) Get(ctx context.Context, subServiceID string) (entities.SubServiceContent, error) {
	c, found, err := getByKey[entities.SubServiceContent](ctx, r.ddb, r.tableName, "subservice_id", subServiceID)
	if err != nil || !found {
		return entities.SubServiceContent{}, err
	}
	return c, nil
}

// Put creates or replaces the document.
func (r *ContentDynamoRepository) Put(ctx context.Context, c entities.SubServiceContent) (entities.SubServiceContent, error) {
	av, err := attributevalue.MarshalMap(c)
	if err != nil {
		return entities.SubServiceContent{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.SubServiceContent{}, err
	}
	return c, nil
}

func (r *ContentDynamoRepository) Delete(ctx context.Context, subServiceID string) error {
	return deleteByKey(ctx, r.ddb, r.tableName, "subservice_id", subServiceID)
}
