package repository

import (
	"context"
	"errors"

	"conecta_tool/internal/domain/entities"
	"conecta_tool/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultActivitiesTableName   = "activities"
	defaultActivityCategoryIndex = "category_id-index"
	defaultActivityProjectIndex  = "project_id-index"
)

type activityItem struct {
	ID             string `dynamodbav:"id"`
	CategoryID     string `dynamodbav:"category_id"`
	ProjectID      string `dynamodbav:"project_id"`
	Name           string `dynamodbav:"name"`
	Description    string `dynamodbav:"description,omitempty"`
	Status         string `dynamodbav:"status"`
	Assignee       string `dynamodbav:"assignee,omitempty"`
	TentativeStart string `dynamodbav:"tentative_start,omitempty"`
	TentativeEnd   string `dynamodbav:"tentative_end,omitempty"`
	Deleted        bool   `dynamodbav:"deleted"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// ActivityDynamoRepository persists Activity entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI category_id-index: category_id
//   - GSI project_id-index: project_id (optional; when the deployment
//     lacks it the repository reports ErrJoinedShapeUnsupported and the
//     board falls back to per-category queries)
//
// Rows are never deleted; SoftDelete flips the deleted flag so history
// and progress audits keep working.
type ActivityDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	categoryIndex string
	projectIndex  string
}

var _ interfaces.IActivityRepository = (*ActivityDynamoRepository)(nil)

func NewActivityDynamoRepository(ddb *dynamodb.Client) *ActivityDynamoRepository {
	return &ActivityDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("ACTIVITIES_TABLE", defaultActivitiesTableName),
		categoryIndex: getenvDefault("ACTIVITIES_CATEGORY_INDEX", defaultActivityCategoryIndex),
		projectIndex:  getenvDefault("ACTIVITIES_PROJECT_INDEX", defaultActivityProjectIndex),
	}
}

func (r *ActivityDynamoRepository) Create(ctx context.Context, a entities.Activity) (entities.Activity, error) {
	av, err := attributevalue.MarshalMap(toActivityItem(a))
	if err != nil {
		return entities.Activity{}, err
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
		return entities.Activity{}, err
	}
	return a, nil
}

func (r *ActivityDynamoRepository) GetByID(ctx context.Context, id string) (entities.Activity, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Activity{}, err
	}
	if len(out.Item) == 0 {
		return entities.Activity{}, nil
	}

	var it activityItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Activity{}, err
	}
	return fromActivityItem(it), nil
}

func (r *ActivityDynamoRepository) ListByCategoryID(ctx context.Context, categoryID string) ([]entities.Activity, error) {
	return r.queryIndex(ctx, r.categoryIndex, "category_id", categoryID)
}

// ListByProjectID serves the joined board shape through the denormalized
// project index. Deployments without the index disable it via
// ACTIVITIES_PROJECT_INDEX="" and get the fallback error instead.
func (r *ActivityDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Activity, error) {
	if r.projectIndex == "" {
		return nil, interfaces.ErrJoinedShapeUnsupported
	}
	return r.queryIndex(ctx, r.projectIndex, "project_id", projectID)
}

func (r *ActivityDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Activity, error) {
	var items []entities.Activity
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String("#k = :v"),
			ExpressionAttributeNames: map[string]string{
				"#k": attr,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: value},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it activityItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromActivityItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *ActivityDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ActivityStatus) (entities.Activity, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ActivityDynamoRepository) SoftDelete(ctx context.Context, id string) (entities.Activity, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #deleted = :deleted, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":deleted":    &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#deleted":    "deleted",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ActivityDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Activity, error) {
	now := formatTime(timeNow())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Activity{}, nil
		}
		return entities.Activity{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Activity{}, nil
	}
	var it activityItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Activity{}, err
	}
	return fromActivityItem(it), nil
}

func toActivityItem(a entities.Activity) activityItem {
	return activityItem{
		ID:             a.ID,
		CategoryID:     a.CategoryID,
		ProjectID:      a.ProjectID,
		Name:           a.Name,
		Description:    a.Description,
		Status:         string(a.Status),
		Assignee:       a.Assignee,
		TentativeStart: formatTimePtr(a.TentativeStart),
		TentativeEnd:   formatTimePtr(a.TentativeEnd),
		Deleted:        a.Deleted,
		CreatedAt:      formatTime(a.CreatedAt),
		UpdatedAt:      formatTime(a.UpdatedAt),
	}
}

func fromActivityItem(it activityItem) entities.Activity {
	return entities.Activity{
		ID:             it.ID,
		CategoryID:     it.CategoryID,
		ProjectID:      it.ProjectID,
		Name:           it.Name,
		Description:    it.Description,
		Status:         entities.ActivityStatus(it.Status),
		Assignee:       it.Assignee,
		TentativeStart: parseTimePtr(it.TentativeStart),
		TentativeEnd:   parseTimePtr(it.TentativeEnd),
		Deleted:        it.Deleted,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
