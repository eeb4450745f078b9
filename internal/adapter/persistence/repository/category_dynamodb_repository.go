package repository

import (
	"context"

	"conecta_tool/internal/domain/entities"
	"conecta_tool/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCategoriesTableName  = "categories"
	defaultCategoryProjectIndex = "project_id-index"
)

type categoryItem struct {
	ID          string `dynamodbav:"id"`
	ProjectID   string `dynamodbav:"project_id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// CategoryDynamoRepository persists Category entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI project_id-index: project_id
//
// Only the category row is stored. Status and progress are derived from
// activities on every read and never written back.
type CategoryDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	projectIndex string
}

var _ interfaces.ICategoryRepository = (*CategoryDynamoRepository)(nil)

func NewCategoryDynamoRepository(ddb *dynamodb.Client) *CategoryDynamoRepository {
	return &CategoryDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("CATEGORIES_TABLE", defaultCategoriesTableName),
		projectIndex: getenvDefault("CATEGORIES_PROJECT_INDEX", defaultCategoryProjectIndex),
	}
}

func (r *CategoryDynamoRepository) Create(ctx context.Context, c entities.Category) (entities.Category, error) {
	av, err := attributevalue.MarshalMap(toCategoryItem(c))
	if err != nil {
		return entities.Category{}, err
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
		return entities.Category{}, err
	}
	return c, nil
}

func (r *CategoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.Category, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Category{}, err
	}
	if len(out.Item) == 0 {
		return entities.Category{}, nil
	}

	var it categoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Category{}, err
	}
	return fromCategoryItem(it), nil
}

func (r *CategoryDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Category, error) {
	var cats []entities.Category
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(r.projectIndex),
			KeyConditionExpression: aws.String("#project_id = :project_id"),
			ExpressionAttributeNames: map[string]string{
				"#project_id": "project_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":project_id": &types.AttributeValueMemberS{Value: projectID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it categoryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			cats = append(cats, fromCategoryItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return cats, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toCategoryItem(c entities.Category) categoryItem {
	return categoryItem{
		ID:          c.ID,
		ProjectID:   c.ProjectID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
}

func fromCategoryItem(it categoryItem) entities.Category {
	return entities.Category{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		Name:        it.Name,
		Description: it.Description,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
