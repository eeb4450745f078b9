package interfaces

import (
	"context"

	"conecta_tool/internal/domain/entities"
)

// IRequirementRepository loads a project request's requirements with
// their nested company quotations (segments, costs, price, approval
// state) and persists operator decisions.
//
// ApplyDecisions is all-or-nothing: either every decision lands or the
// call fails and nothing is written.
type IRequirementRepository interface {
	ListByRequestID(ctx context.Context, requestID string) ([]entities.Requirement, error)
	ApplyDecisions(ctx context.Context, decisions []entities.ApprovalDecision) error
}

// IClientQuotationRepository persists the consolidated client quotation,
// one artifact per project request. GetByRequestID returns a zero-value
// quotation (empty RequestID) when none exists yet.
type IClientQuotationRepository interface {
	GetByRequestID(ctx context.Context, requestID string) (entities.ClientQuotation, error)
	Save(ctx context.Context, q entities.ClientQuotation) (entities.ClientQuotation, error)
}

// IProjectRequestRepository resolves display data about the owning
// project request.
type IProjectRequestRepository interface {
	GetClientName(ctx context.Context, requestID string) (string, error)
}
