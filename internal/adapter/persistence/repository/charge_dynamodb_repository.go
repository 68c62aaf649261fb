package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Sandrinhosilv/back-marceneiro/internal/domain/entities"
	"github.com/Sandrinhosilv/back-marceneiro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultChargesTableName = "pix_charges"

type chargeItem struct {
	ID           string            `dynamodbav:"id"`
	Plan         string            `dynamodbav:"plan"`
	Amount       float64           `dynamodbav:"amount"`
	Email        string            `dynamodbav:"email"`
	Whatsapp     string            `dynamodbav:"whatsapp"`
	Attribution  map[string]string `dynamodbav:"attribution,omitempty"`
	PurchaseSent bool              `dynamodbav:"purchase_sent"`
	CreatedAt    string            `dynamodbav:"created_at"`
}

// ChargeDynamoRepository persists ChargeRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, the provider payment id)
//
// ClaimPurchaseReport relies on a ConditionExpression, so the table itself
// enforces the single-writer guarantee for the purchase-report flag.

type ChargeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChargeRepository = (*ChargeDynamoRepository)(nil)

func NewChargeDynamoRepository(ddb *dynamodb.Client, tableName string) *ChargeDynamoRepository {
	if tableName == "" {
		tableName = defaultChargesTableName
	}
	return &ChargeDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ChargeDynamoRepository) Create(ctx context.Context, rec entities.ChargeRecord) (entities.ChargeRecord, error) {
	av, err := attributevalue.MarshalMap(toChargeItem(rec))
	if err != nil {
		return entities.ChargeRecord{}, err
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
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			// Same provider payment id written twice; first write wins.
			return rec, nil
		}
		return entities.ChargeRecord{}, err
	}
	return rec, nil
}

func (r *ChargeDynamoRepository) GetByID(ctx context.Context, id string) (entities.ChargeRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ChargeRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ChargeRecord{}, nil
	}

	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ChargeRecord{}, err
	}
	return fromChargeItem(it), nil
}

// ClaimPurchaseReport flips purchase_sent false→true. The condition makes
// DynamoDB the arbiter: of any number of concurrent callers, exactly one
// gets claimed=true; the rest fail the condition and get claimed=false.
func (r *ChargeDynamoRepository) ClaimPurchaseReport(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #ps = :sent"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #ps = :unsent"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
			"#ps": "purchase_sent",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sent":   &types.AttributeValueMemberBOOL{Value: true},
			":unsent": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toChargeItem(rec entities.ChargeRecord) chargeItem {
	return chargeItem{
		ID:           rec.ID,
		Plan:         rec.Plan,
		Amount:       rec.Amount,
		Email:        rec.Email,
		Whatsapp:     rec.Whatsapp,
		Attribution:  rec.Attribution,
		PurchaseSent: rec.PurchaseSent,
		CreatedAt:    rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromChargeItem(it chargeItem) entities.ChargeRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ChargeRecord{
		ID:           it.ID,
		Plan:         it.Plan,
		Amount:       it.Amount,
		Email:        it.Email,
		Whatsapp:     it.Whatsapp,
		Attribution:  it.Attribution,
		PurchaseSent: it.PurchaseSent,
		CreatedAt:    createdAt,
	}
}
