package repository

import (
	"context"
	"sort"

	"rentalquotes/internal/domain/entities"
	"rentalquotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCatalogProductsTableName = "catalog_products"
	defaultCatalogTermsTableName    = "catalog_terms"

	productStatusPublished = "published"
)

type catalogTermItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
	// Position fixes the catalog's natural iteration order across scans.
	Position   int      `dynamodbav:"position"`
	ProductIDs []string `dynamodbav:"product_ids,omitempty"`
}

type catalogProductItem struct {
	ID     string `dynamodbav:"id"`
	Name   string `dynamodbav:"name"`
	Status string `dynamodbav:"status"`
	// Attributes are the typed taxonomy attributes; CustomFields the plain
	// custom-field fallback consulted second.
	Attributes   map[string]string `dynamodbav:"attributes,omitempty"`
	CustomFields map[string]string `dynamodbav:"custom_fields,omitempty"`
	Permalink    string            `dynamodbav:"permalink,omitempty"`
}

// CatalogDynamoRepository serves the vehicle catalog read-only from two
// DynamoDB tables (terms and products). Catalogs are small, so term listing
// is a scan ordered by position.
type CatalogDynamoRepository struct {
	ddb           *dynamodb.Client
	productsTable string
	termsTable    string
}

var _ interfaces.ICatalogService = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:           ddb,
		productsTable: getenvDefault("CATALOG_PRODUCTS_TABLE", defaultCatalogProductsTableName),
		termsTable:    getenvDefault("CATALOG_TERMS_TABLE", defaultCatalogTermsTableName),
	}
}

func (r *CatalogDynamoRepository) ListTerms(ctx context.Context) ([]entities.CatalogTerm, error) {
	items, err := r.scanTerms(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	terms := make([]entities.CatalogTerm, 0, len(items))
	for _, it := range items {
		terms = append(terms, entities.CatalogTerm{ID: it.ID, Name: it.Name})
	}
	return terms, nil
}

func (r *CatalogDynamoRepository) scanTerms(ctx context.Context) ([]catalogTermItem, error) {
	var items []catalogTermItem
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.termsTable),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []catalogTermItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// FirstPublishedProduct walks the term's product list in order and returns
// the first published one, "" when the term is unknown or nothing published
// carries it.
func (r *CatalogDynamoRepository) FirstPublishedProduct(ctx context.Context, termID string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.termsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: termID},
		},
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var term catalogTermItem
	if err := attributevalue.UnmarshalMap(out.Item, &term); err != nil {
		return "", err
	}

	for _, productID := range term.ProductIDs {
		p, err := r.getProduct(ctx, productID)
		if err != nil {
			return "", err
		}
		if p.ID != "" && p.Status == productStatusPublished {
			return p.ID, nil
		}
	}
	return "", nil
}

// GetAttribute resolves the typed taxonomy attribute first, then falls back
// to the plain custom field of the same name.
func (r *CatalogDynamoRepository) GetAttribute(ctx context.Context, productID, attributeName string) (string, error) {
	p, err := r.getProduct(ctx, productID)
	if err != nil {
		return "", err
	}
	if p.ID == "" {
		return "", nil
	}
	if v, ok := p.Attributes[attributeName]; ok && v != "" {
		return v, nil
	}
	return p.CustomFields[attributeName], nil
}

func (r *CatalogDynamoRepository) ProductExists(ctx context.Context, productID string) (bool, error) {
	p, err := r.getProduct(ctx, productID)
	if err != nil {
		return false, err
	}
	return p.ID != "", nil
}

func (r *CatalogDynamoRepository) GetProductPermalink(ctx context.Context, productID string) (string, error) {
	p, err := r.getProduct(ctx, productID)
	if err != nil {
		return "", err
	}
	return p.Permalink, nil
}

func (r *CatalogDynamoRepository) getProduct(ctx context.Context, productID string) (catalogProductItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.productsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: productID},
		},
	})
	if err != nil {
		return catalogProductItem{}, err
	}
	if len(out.Item) == 0 {
		return catalogProductItem{}, nil
	}

	var it catalogProductItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return catalogProductItem{}, err
	}
	return it, nil
}
