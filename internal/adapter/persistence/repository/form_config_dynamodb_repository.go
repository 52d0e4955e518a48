package repository

import (
	"context"

	"rentalquotes/internal/domain/entities"
	"rentalquotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFormConfigsTableName = "form_configs"

type formConfigItem struct {
	FormID             string            `dynamodbav:"form_id"`
	QuoteFieldMappings map[string]string `dynamodbav:"quote_field_mappings,omitempty"`
	VehicleSource      string            `dynamodbav:"vehicle_source,omitempty"`
	VehicleFieldID     string            `dynamodbav:"vehicle_field_id,omitempty"`
	VehicleSmartTag    string            `dynamodbav:"vehicle_smart_tag,omitempty"`
	ProductIDSource    string            `dynamodbav:"product_id_source,omitempty"`
	ProductIDFieldID   string            `dynamodbav:"product_id_field_id,omitempty"`
	ProductIDSmartTag  string            `dynamodbav:"product_id_smart_tag,omitempty"`
	FormType           string            `dynamodbav:"form_type,omitempty"`
}

// FormConfigDynamoRepository reads field-mapping configs from DynamoDB.
// The settings subsystem owns the writes; this service only resolves one
// config per inbound submission.
//
// Table requirements:
//   - PK: form_id (string)
type FormConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFormConfigRepository = (*FormConfigDynamoRepository)(nil)

func NewFormConfigDynamoRepository(ddb *dynamodb.Client) *FormConfigDynamoRepository {
	return &FormConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FORM_CONFIGS_TABLE", defaultFormConfigsTableName),
	}
}

func (r *FormConfigDynamoRepository) GetByFormID(ctx context.Context, formID string) (entities.FieldMappingConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"form_id": &types.AttributeValueMemberS{Value: formID},
		},
	})
	if err != nil {
		return entities.FieldMappingConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.FieldMappingConfig{}, nil
	}

	var it formConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FieldMappingConfig{}, err
	}
	return entities.FieldMappingConfig{
		FormID:             it.FormID,
		QuoteFieldMappings: it.QuoteFieldMappings,
		VehicleSource:      entities.FieldSource(it.VehicleSource),
		VehicleFieldID:     it.VehicleFieldID,
		VehicleSmartTag:    it.VehicleSmartTag,
		ProductIDSource:    entities.FieldSource(it.ProductIDSource),
		ProductIDFieldID:   it.ProductIDFieldID,
		ProductIDSmartTag:  it.ProductIDSmartTag,
		FormType:           it.FormType,
	}, nil
}
