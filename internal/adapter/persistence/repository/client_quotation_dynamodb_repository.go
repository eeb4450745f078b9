package repository

import (
	"context"
	"strconv"

	"conecta_tool/internal/domain/entities"
	"conecta_tool/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientQuotationsTableName = "client_quotations"

type clientQuotationItem struct {
	RequestID          string   `dynamodbav:"request_id"`
	FileName           string   `dynamodbav:"file_name,omitempty"`
	FileKey            string   `dynamodbav:"file_key,omitempty"`
	ClientPrice        string   `dynamodbav:"client_price"`
	Observations       string   `dynamodbav:"observations,omitempty"`
	QuotationDate      string   `dynamodbav:"quotation_date"`
	SelectedCompanyIDs []string `dynamodbav:"selected_company_ids,omitempty"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

// ClientQuotationDynamoRepository persists the consolidated client
// quotation in DynamoDB.
//
// Table requirements:
//   - PK: request_id (string)
//
// One artifact per project request: Save is an unconditional PutItem, so
// a resubmission replaces the stored row in place.
type ClientQuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientQuotationRepository = (*ClientQuotationDynamoRepository)(nil)

func NewClientQuotationDynamoRepository(ddb *dynamodb.Client) *ClientQuotationDynamoRepository {
	return &ClientQuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENT_QUOTATIONS_TABLE", defaultClientQuotationsTableName),
	}
}

func (r *ClientQuotationDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.ClientQuotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"request_id": &types.AttributeValueMemberS{Value: requestID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ClientQuotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClientQuotation{}, nil
	}

	var it clientQuotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClientQuotation{}, err
	}
	return fromClientQuotationItem(it), nil
}

func (r *ClientQuotationDynamoRepository) Save(ctx context.Context, q entities.ClientQuotation) (entities.ClientQuotation, error) {
	av, err := attributevalue.MarshalMap(toClientQuotationItem(q))
	if err != nil {
		return entities.ClientQuotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ClientQuotation{}, err
	}
	return q, nil
}

func toClientQuotationItem(q entities.ClientQuotation) clientQuotationItem {
	return clientQuotationItem{
		RequestID:          q.RequestID,
		FileName:           q.FileName,
		FileKey:            q.FileKey,
		ClientPrice:        strconv.FormatFloat(q.ClientPrice, 'f', 2, 64),
		Observations:       q.Observations,
		QuotationDate:      formatTime(q.QuotationDate),
		SelectedCompanyIDs: q.SelectedCompanyIDs,
		CreatedAt:          formatTime(q.CreatedAt),
		UpdatedAt:          formatTime(q.UpdatedAt),
	}
}

func fromClientQuotationItem(it clientQuotationItem) entities.ClientQuotation {
	price, _ := strconv.ParseFloat(it.ClientPrice, 64)
	return entities.ClientQuotation{
		RequestID:          it.RequestID,
		FileName:           it.FileName,
		FileKey:            it.FileKey,
		ClientPrice:        price,
		Observations:       it.Observations,
		QuotationDate:      parseTime(it.QuotationDate),
		SelectedCompanyIDs: it.SelectedCompanyIDs,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
