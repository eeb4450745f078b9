package repository

import (
	"context"
	"errors"
	"strings"

	"conecta_tool/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectRequestsTableName = "project_requests"

var ErrProjectRequestNotFound = errors.New("project request not found")

type projectRequestItem struct {
	ID          string `dynamodbav:"id"`
	ClientID    string `dynamodbav:"client_id,omitempty"`
	ClientName  string `dynamodbav:"client_name,omitempty"`
	CompanyName string `dynamodbav:"company_name,omitempty"`
	Title       string `dynamodbav:"title,omitempty"`
}

// ProjectRequestDynamoRepository resolves display data for a project
// request. The request rows are owned by the wider Conecta backend; this
// repository only reads the denormalized client display fields.
type ProjectRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRequestRepository = (*ProjectRequestDynamoRepository)(nil)

func NewProjectRequestDynamoRepository(ddb *dynamodb.Client) *ProjectRequestDynamoRepository {
	return &ProjectRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECT_REQUESTS_TABLE", defaultProjectRequestsTableName),
	}
}

func (r *ProjectRequestDynamoRepository) GetClientName(ctx context.Context, requestID string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: requestID},
		},
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", ErrProjectRequestNotFound
	}

	var it projectRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	if name := strings.TrimSpace(it.ClientName); name != "" {
		return name, nil
	}
	return strings.TrimSpace(it.CompanyName), nil
}
