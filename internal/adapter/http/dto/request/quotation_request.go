package request

import (
	"encoding/json"
	"errors"

	"conecta_tool/internal/domain/entities"
)

var ErrInvalidDecisions = errors.New("invalid decisions payload")

// DecisionRequest is one operator decision over a company quotation.
// IsApproved is a pointer so an omitted value is distinguishable from an
// explicit rejection.
type DecisionRequest struct {
	QuotationID       string `json:"quotation_id" binding:"required"`
	IsApproved        *bool  `json:"is_approved" binding:"required"`
	NonApprovalReason string `json:"non_approval_reason"`
}

// TotalsRequest asks for a stateless recompute of the approved totals.
type TotalsRequest struct {
	Decisions []DecisionRequest `json:"decisions" binding:"required"`
}

func (r TotalsRequest) ToDecisions() []entities.ApprovalDecision {
	return ToDecisions(r.Decisions)
}

func ToDecisions(in []DecisionRequest) []entities.ApprovalDecision {
	out := make([]entities.ApprovalDecision, 0, len(in))
	for _, d := range in {
		dec := entities.ApprovalDecision{QuotationID: d.QuotationID}
		if d.IsApproved != nil {
			dec.Approved = *d.IsApproved
		}
		if !dec.Approved {
			dec.Reason = d.NonApprovalReason
		}
		out = append(out, dec)
	}
	return out
}

// ParseDecisionsJSON decodes the decisions form field of the multipart
// submit request.
func ParseDecisionsJSON(raw string) ([]entities.ApprovalDecision, error) {
	if raw == "" {
		return nil, ErrInvalidDecisions
	}
	var in []DecisionRequest
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return nil, ErrInvalidDecisions
	}
	for _, d := range in {
		if d.QuotationID == "" || d.IsApproved == nil {
			return nil, ErrInvalidDecisions
		}
	}
	return ToDecisions(in), nil
}
