package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"rentalquotes/internal/domain/entities"
	"rentalquotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

// hashGuardPrefix keys the companion item that makes the quote hash unique
// at the storage layer. It shares the quotes table.
const hashGuardPrefix = "hash#"

var ErrQuoteMissingRequiredFields = errors.New("quote requires customer name and email")

type quoteItem struct {
	ID                string `dynamodbav:"id"`
	QuoteHash         string `dynamodbav:"quote_hash"`
	CustomerName      string `dynamodbav:"customer_name"`
	CustomerEmail     string `dynamodbav:"customer_email"`
	CustomerPhone     string `dynamodbav:"customer_phone,omitempty"`
	CustomerAge       string `dynamodbav:"customer_age,omitempty"`
	ContactPreference string `dynamodbav:"contact_preference,omitempty"`
	VehicleName       string `dynamodbav:"vehicle_name,omitempty"`
	VehicleDetails    string `dynamodbav:"vehicle_details,omitempty"`
	ProductID         string `dynamodbav:"product_id,omitempty"`
	RentalDates       string `dynamodbav:"rental_dates,omitempty"`
	RentalDays        int    `dynamodbav:"rental_days,omitempty"`
	RentalPrice       string `dynamodbav:"rental_price,omitempty"`
	DepositAmount     string `dynamodbav:"deposit_amount,omitempty"`
	MileageAllowance  string `dynamodbav:"mileage_allowance,omitempty"`
	FormType          string `dynamodbav:"form_type,omitempty"`
	IPAddress         string `dynamodbav:"ip_address,omitempty"`
	UserAgent         string `dynamodbav:"user_agent,omitempty"`
	ReferrerURL       string `dynamodbav:"referrer_url,omitempty"`
	Status            string `dynamodbav:"status"`
	QuickSendUsed     bool   `dynamodbav:"quick_send_used"`
	QuickSendUsedAt   string `dynamodbav:"quick_send_used_at,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

type hashGuardItem struct {
	ID      string `dynamodbav:"id"`
	QuoteID string `dynamodbav:"quote_id"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Hash uniqueness is enforced with a transactional guard item keyed
// "hash#<quote_hash>"; the same item resolves GetByHash without a GSI.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if q.CustomerName == "" || q.CustomerEmail == "" {
		return entities.Quote{}, ErrQuoteMissingRequiredFields
	}

	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}
	guard, err := attributevalue.MarshalMap(hashGuardItem{ID: hashGuardPrefix + q.QuoteHash, QuoteID: q.ID})
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     guard,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) GetByHash(ctx context.Context, hash string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: hashGuardPrefix + hash},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var guard hashGuardItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.Quote{}, err
	}
	return r.GetByID(ctx, guard.QuoteID)
}

// MarkQuoted moves a pending quote to quoted. Quoted and paid rows fail the
// condition and are returned unchanged.
func (r *QuoteDynamoRepository) MarkQuoted(ctx context.Context, id string) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :quoted, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPending)},
			":quoted":     &types.AttributeValueMemberS{Value: string(entities.QuoteStatusQuoted)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return r.GetByID(ctx, id)
		}
		return entities.Quote{}, err
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// ClaimQuickSend is the atomic test-and-set gating the first-use branch of
// the quick-send flow. Exactly one concurrent caller gets claimed=true.
func (r *QuoteDynamoRepository) ClaimQuickSend(ctx context.Context, id string, at time.Time) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#used) OR #used = :false)"),
		UpdateExpression:    aws.String("SET #used = :true, #used_at = :used_at, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#used":       "quick_send_used",
			"#used_at":    "quick_send_used_at",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false":      &types.AttributeValueMemberBOOL{Value: false},
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":used_at":    &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
			":updated_at": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:                q.ID,
		QuoteHash:         q.QuoteHash,
		CustomerName:      q.CustomerName,
		CustomerEmail:     q.CustomerEmail,
		CustomerPhone:     q.CustomerPhone,
		CustomerAge:       q.CustomerAge,
		ContactPreference: q.ContactPreference,
		VehicleName:       q.VehicleName,
		VehicleDetails:    q.VehicleDetails,
		ProductID:         q.ProductID,
		RentalDates:       q.RentalDates,
		RentalDays:        q.RentalDays,
		MileageAllowance:  q.MileageAllowance,
		FormType:          q.FormType,
		IPAddress:         q.IPAddress,
		UserAgent:         q.UserAgent,
		ReferrerURL:       q.ReferrerURL,
		Status:            string(q.Status),
		QuickSendUsed:     q.QuickSendUsed,
		CreatedAt:         q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.RentalPrice > 0 {
		it.RentalPrice = floatToString(q.RentalPrice)
	}
	if q.DepositAmount > 0 {
		it.DepositAmount = floatToString(q.DepositAmount)
	}
	if q.QuickSendUsedAt != nil {
		it.QuickSendUsedAt = q.QuickSendUsedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	rentalPrice, _ := strconv.ParseFloat(it.RentalPrice, 64)
	deposit, _ := strconv.ParseFloat(it.DepositAmount, 64)

	q := entities.Quote{
		ID:                it.ID,
		QuoteHash:         it.QuoteHash,
		CustomerName:      it.CustomerName,
		CustomerEmail:     it.CustomerEmail,
		CustomerPhone:     it.CustomerPhone,
		CustomerAge:       it.CustomerAge,
		ContactPreference: it.ContactPreference,
		VehicleName:       it.VehicleName,
		VehicleDetails:    it.VehicleDetails,
		ProductID:         it.ProductID,
		RentalDates:       it.RentalDates,
		RentalDays:        it.RentalDays,
		RentalPrice:       rentalPrice,
		DepositAmount:     deposit,
		MileageAllowance:  it.MileageAllowance,
		FormType:          it.FormType,
		IPAddress:         it.IPAddress,
		UserAgent:         it.UserAgent,
		ReferrerURL:       it.ReferrerURL,
		Status:            entities.QuoteStatus(it.Status),
		QuickSendUsed:     it.QuickSendUsed,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
	if it.QuickSendUsedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.QuickSendUsedAt); err == nil {
			q.QuickSendUsedAt = &t
		}
	}
	return q
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
