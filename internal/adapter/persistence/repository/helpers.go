package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"nishad_gateway/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLeadsTableName       = "leads"
	defaultServicesTableName    = "services"
	defaultSubServicesTableName = "subservices"
	defaultContentTableName     = "subservice_contents"
	defaultAdminsTableName      = "admins"

	serviceSlugIndex      = "slug-index"
	subServiceParentIndex = "service_id-index"
	adminEmailIndex       = "email-index"
)

// DynamoAPI is the part of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// TableSpecs lists every table the gateway reads or writes, with the
// names resolved from the environment.
func TableSpecs() []database.TableSpec {
	return []database.TableSpec{
		{Name: getenvDefault("LEADS_TABLE", defaultLeadsTableName), HashKey: "id"},
		{
			Name:    getenvDefault("SERVICES_TABLE", defaultServicesTableName),
			HashKey: "id",
			Indexes: []database.IndexSpec{{Name: serviceSlugIndex, HashKey: "slug"}},
		},
		{
			Name:    getenvDefault("SUBSERVICES_TABLE", defaultSubServicesTableName),
			HashKey: "id",
			Indexes: []database.IndexSpec{{Name: subServiceParentIndex, HashKey: "service_id"}},
		},
		{Name: getenvDefault("CONTENT_TABLE", defaultContentTableName), HashKey: "subservice_id"},
		{
			Name:    getenvDefault("ADMINS_TABLE", defaultAdminsTableName),
			HashKey: "id",
			Indexes: []database.IndexSpec{{Name: adminEmailIndex, HashKey: "email"}},
		},
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, v)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// queryIndex returns every item whose index hash key equals value.
func queryIndex[T any](ctx context.Context, ddb DynamoAPI, table, index, key, value string) ([]T, error) {
	p := dynamodb.NewQueryPaginator(ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})

	var out []T
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func scanTable[T any](ctx context.Context, ddb DynamoAPI, table string) ([]T, error) {
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{
		TableName: aws.String(table),
	})

	var out []T
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// getByKey loads one item. found is false when the key does not exist.
func getByKey[T any](ctx context.Context, ddb DynamoAPI, table, key, value string) (item T, found bool, err error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			key: &types.AttributeValueMemberS{Value: value},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return item, false, err
	}
	if len(out.Item) == 0 {
		return item, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return item, false, err
	}
	return item, true, nil
}

// putItem writes item. With mustExist the write only replaces an existing
// row and reports written=false when there is none; otherwise it only
// inserts new rows.
func putItem(ctx context.Context, ddb DynamoAPI, table, key string, item any, mustExist bool) (written bool, err error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, err
	}
	cond := "attribute_not_exists(#id)"
	if mustExist {
		cond = "attribute_exists(#id)"
	}

	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String(cond),
		ExpressionAttributeNames: map[string]string{
			"#id": key,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if mustExist && errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func deleteByKey(ctx context.Context, ddb DynamoAPI, table, key, value string) error {
	_, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			key: &types.AttributeValueMemberS{Value: value},
		},
	})
	return err
}
