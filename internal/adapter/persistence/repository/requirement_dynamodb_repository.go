package repository

import (
	"context"
	"errors"
	"sort"

	"conecta_tool/internal/domain/entities"
	"conecta_tool/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequirementsTableName = "requirements"
	defaultQuotationsTableName   = "company_quotations"
	defaultRequestIndex          = "request_id-index"

	// DynamoDB caps TransactWriteItems at 100 actions; a workflow with
	// more quotations than that cannot be decided in one batch.
	maxDecisionBatch = 100
)

var ErrDecisionBatchTooLarge = errors.New("decision batch exceeds transaction limit")

type requirementItem struct {
	ID             string   `dynamodbav:"id"`
	RequestID      string   `dynamodbav:"request_id"`
	Name           string   `dynamodbav:"name"`
	SpecialtyID    string   `dynamodbav:"specialty_id,omitempty"`
	ScopeID        string   `dynamodbav:"scope_id,omitempty"`
	SubscopeID     string   `dynamodbav:"subscope_id,omitempty"`
	Certifications []string `dynamodbav:"certifications,omitempty"`
}

type segmentItem struct {
	EstimatedDelivery string `dynamodbav:"estimated_delivery"`
	Description       string `dynamodbav:"description"`
}

type quotationItem struct {
	ID                string        `dynamodbav:"id"`
	CompanyID         string        `dynamodbav:"company_id"`
	CompanyName       string        `dynamodbav:"company_name"`
	RequirementID     string        `dynamodbav:"requirement_id"`
	RequirementName   string        `dynamodbav:"requirement_name"`
	RequestID         string        `dynamodbav:"request_id"`
	MaterialCost      string        `dynamodbav:"material_cost,omitempty"`
	DirectCost        string        `dynamodbav:"direct_cost,omitempty"`
	IndirectCost      string        `dynamodbav:"indirect_cost,omitempty"`
	Price             string        `dynamodbav:"price,omitempty"`
	IsClientSelected  bool          `dynamodbav:"is_client_selected"`
	IsClientApproved  *bool         `dynamodbav:"is_client_approved,omitempty"`
	NonApprovalReason string        `dynamodbav:"non_approval_reason,omitempty"`
	StatusID          string        `dynamodbav:"status_id,omitempty"`
	AdditionalDetails string        `dynamodbav:"additional_details,omitempty"`
	Segments          []segmentItem `dynamodbav:"segments,omitempty"`
}

// RequirementDynamoRepository loads requirements with nested company
// quotations and persists approval decisions.
//
// Table requirements:
//   - requirements: PK id, GSI request_id-index
//   - company_quotations: PK id, GSI request_id-index (request_id is
//     denormalized onto quotations so the whole workflow loads with two
//     queries instead of one per requirement)
type RequirementDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	quotationsTable string
	requestIndex    string
}

var _ interfaces.IRequirementRepository = (*RequirementDynamoRepository)(nil)

func NewRequirementDynamoRepository(ddb *dynamodb.Client) *RequirementDynamoRepository {
	return &RequirementDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("REQUIREMENTS_TABLE", defaultRequirementsTableName),
		quotationsTable: getenvDefault("COMPANY_QUOTATIONS_TABLE", defaultQuotationsTableName),
		requestIndex:    getenvDefault("REQUEST_INDEX", defaultRequestIndex),
	}
}

func (r *RequirementDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.Requirement, error) {
	reqItems, err := queryByRequestID[requirementItem](ctx, r.ddb, r.tableName, r.requestIndex, requestID)
	if err != nil {
		return nil, err
	}
	quoItems, err := queryByRequestID[quotationItem](ctx, r.ddb, r.quotationsTable, r.requestIndex, requestID)
	if err != nil {
		return nil, err
	}

	byRequirement := make(map[string][]entities.CompanyQuotation)
	for _, q := range quoItems {
		byRequirement[q.RequirementID] = append(byRequirement[q.RequirementID], fromQuotationItem(q))
	}

	reqs := make([]entities.Requirement, 0, len(reqItems))
	for _, it := range reqItems {
		quotations := byRequirement[it.ID]
		sort.SliceStable(quotations, func(i, j int) bool { return quotations[i].ID < quotations[j].ID })
		reqs = append(reqs, entities.Requirement{
			ID:             it.ID,
			RequestID:      it.RequestID,
			Name:           it.Name,
			SpecialtyID:    it.SpecialtyID,
			ScopeID:        it.ScopeID,
			SubscopeID:     it.SubscopeID,
			Certifications: it.Certifications,
			Quotations:     quotations,
		})
	}
	sort.SliceStable(reqs, func(i, j int) bool { return reqs[i].ID < reqs[j].ID })
	return reqs, nil
}

// ApplyDecisions persists the whole decision set in one
// TransactWriteItems call, so either every quotation's approval state
// lands or none does. Approving REMOVEs the stored reason; rejecting
// SETs it.
func (r *RequirementDynamoRepository) ApplyDecisions(ctx context.Context, decisions []entities.ApprovalDecision) error {
	if len(decisions) == 0 {
		return nil
	}
	if len(decisions) > maxDecisionBatch {
		return ErrDecisionBatchTooLarge
	}

	items := make([]types.TransactWriteItem, 0, len(decisions))
	for _, d := range decisions {
		expr := "SET #approved = :approved REMOVE #reason"
		vals := map[string]types.AttributeValue{
			":approved": &types.AttributeValueMemberBOOL{Value: d.Approved},
		}
		if !d.Approved {
			expr = "SET #approved = :approved, #reason = :reason"
			vals[":reason"] = &types.AttributeValueMemberS{Value: d.Reason}
		}
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.quotationsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: d.QuotationID},
				},
				ConditionExpression:       aws.String("attribute_exists(#id)"),
				UpdateExpression:          aws.String(expr),
				ExpressionAttributeValues: vals,
				ExpressionAttributeNames: map[string]string{
					"#id":       "id",
					"#approved": "is_client_approved",
					"#reason":   "non_approval_reason",
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	return err
}

func queryByRequestID[T any](ctx context.Context, ddb *dynamodb.Client, table, index, requestID string) ([]T, error) {
	var items []T
	var startKey map[string]types.AttributeValue
	for {
		out, err := ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(table),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String("#request_id = :request_id"),
			ExpressionAttributeNames: map[string]string{
				"#request_id": "request_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":request_id": &types.AttributeValueMemberS{Value: requestID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it T
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func fromQuotationItem(it quotationItem) entities.CompanyQuotation {
	segments := make([]entities.Segment, 0, len(it.Segments))
	for _, s := range it.Segments {
		segments = append(segments, entities.Segment{
			EstimatedDelivery: parseTime(s.EstimatedDelivery),
			Description:       s.Description,
		})
	}
	if len(segments) == 0 {
		segments = nil
	}
	return entities.CompanyQuotation{
		ID:                it.ID,
		CompanyID:         it.CompanyID,
		CompanyName:       it.CompanyName,
		RequirementID:     it.RequirementID,
		RequirementName:   it.RequirementName,
		MaterialCost:      parseFloatPtr(it.MaterialCost),
		DirectCost:        parseFloatPtr(it.DirectCost),
		IndirectCost:      parseFloatPtr(it.IndirectCost),
		Price:             parseFloatPtr(it.Price),
		IsClientSelected:  it.IsClientSelected,
		IsClientApproved:  it.IsClientApproved,
		NonApprovalReason: it.NonApprovalReason,
		StatusID:          it.StatusID,
		AdditionalDetails: it.AdditionalDetails,
		Segments:          segments,
	}
}
