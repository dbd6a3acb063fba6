package repository

import (
	"context"
	"errors"
	"time"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type leadItem struct {
	ID                string `dynamodbav:"id"`
	FullName          string `dynamodbav:"full_name"`
	Email             string `dynamodbav:"email"`
	Mobile            string `dynamodbav:"mobile"`
	InvestorType      string `dynamodbav:"investor_type"`
	Activity          string `dynamodbav:"activity"`
	City              string `dynamodbav:"city"`
	Timeline          string `dynamodbav:"timeline"`
	Visas             int    `dynamodbav:"visas"`
	BankSupport       bool   `dynamodbav:"bank_support"`
	AccountingSupport bool   `dynamodbav:"accounting_support"`
	VROSupport        bool   `dynamodbav:"vro_support"`
	EstimateMin       int    `dynamodbav:"estimate_min"`
	EstimateMax       int    `dynamodbav:"estimate_max"`
	TimelineText      string `dynamodbav:"timeline_text"`
	RecommendedSetup  string `dynamodbav:"recommended_setup"`
	SuggestedCity     string `dynamodbav:"suggested_city"`
	ReportID          string `dynamodbav:"report_id"`
	Source            string `dynamodbav:"source"`
	Status            string `dynamodbav:"status"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists calculator leads in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The admin panel lists every lead, so List is a paginated Scan. Lead volume
// is a few thousand rows a year.
type LeadDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb DynamoAPI) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	it, found, err := getByKey[leadItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) List(ctx context.Context) ([]entities.Lead, error) {
	items, err := scanTable[leadItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	leads := make([]entities.Lead, 0, len(items))
	for _, it := range items {
		leads = append(leads, fromLeadItem(it))
	}
	return leads, nil
}

func (r *LeadDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}
	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:                l.ID,
		FullName:          l.FullName,
		Email:             l.Email,
		Mobile:            l.Mobile,
		InvestorType:      l.InvestorType,
		Activity:          l.Activity,
		City:              l.City,
		Timeline:          l.Timeline,
		Visas:             l.Visas,
		BankSupport:       l.Supports.BankSupport,
		AccountingSupport: l.Supports.AccountingSupport,
		VROSupport:        l.Supports.VROSupport,
		EstimateMin:       l.Estimate.Min,
		EstimateMax:       l.Estimate.Max,
		TimelineText:      l.Estimate.TimelineText,
		RecommendedSetup:  l.Estimate.RecommendedSetup,
		SuggestedCity:     l.Estimate.SuggestedCity,
		ReportID:          l.Estimate.ReportID,
		Source:            l.Source,
		Status:            string(l.Status),
		CreatedAt:         formatTime(l.CreatedAt),
		UpdatedAt:         formatTime(l.UpdatedAt),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	status := entities.LeadStatus(it.Status)
	if status == "" {
		status = entities.LeadStatusNew
	}
	return entities.Lead{
		ID:           it.ID,
		FullName:     it.FullName,
		Email:        it.Email,
		Mobile:       it.Mobile,
		InvestorType: it.InvestorType,
		Activity:     it.Activity,
		City:         it.City,
		Timeline:     it.Timeline,
		Visas:        it.Visas,
		Supports: entities.LeadSupports{
			BankSupport:       it.BankSupport,
			AccountingSupport: it.AccountingSupport,
			VROSupport:        it.VROSupport,
		},
		Estimate: entities.LeadEstimate{
			Min:              it.EstimateMin,
			Max:              it.EstimateMax,
			TimelineText:     it.TimelineText,
			RecommendedSetup: it.RecommendedSetup,
			SuggestedCity:    it.SuggestedCity,
			ReportID:         it.ReportID,
		},
		Source:    it.Source,
		Status:    status,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
