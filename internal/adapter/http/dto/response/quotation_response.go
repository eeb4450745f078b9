package response

import (
	"time"

	"conecta_tool/internal/domain/approval"
	"conecta_tool/internal/domain/entities"
	"conecta_tool/internal/usecase"
)

type SegmentResponse struct {
	EstimatedDelivery time.Time `json:"estimated_delivery"`
	Description       string    `json:"description"`
}

type CompanyQuotationResponse struct {
	ID                string            `json:"id"`
	CompanyID         string            `json:"company_id"`
	CompanyName       string            `json:"company_name"`
	RequirementID     string            `json:"requirement_id"`
	RequirementName   string            `json:"requirement_name"`
	MaterialCost      *float64          `json:"material_cost"`
	DirectCost        *float64          `json:"direct_cost"`
	IndirectCost      *float64          `json:"indirect_cost"`
	Price             *float64          `json:"price"`
	IsClientSelected  bool              `json:"is_client_selected"`
	IsClientApproved  *bool             `json:"is_client_approved"`
	NonApprovalReason string            `json:"non_approval_reason,omitempty"`
	StatusID          string            `json:"status_id,omitempty"`
	AdditionalDetails string            `json:"additional_details,omitempty"`
	Segments          []SegmentResponse `json:"segments,omitempty"`
}

func FromCompanyQuotation(q entities.CompanyQuotation) CompanyQuotationResponse {
	out := CompanyQuotationResponse{
		ID:                q.ID,
		CompanyID:         q.CompanyID,
		CompanyName:       q.CompanyName,
		RequirementID:     q.RequirementID,
		RequirementName:   q.RequirementName,
		MaterialCost:      q.MaterialCost,
		DirectCost:        q.DirectCost,
		IndirectCost:      q.IndirectCost,
		Price:             q.Price,
		IsClientSelected:  q.IsClientSelected,
		IsClientApproved:  q.IsClientApproved,
		NonApprovalReason: q.NonApprovalReason,
		StatusID:          q.StatusID,
		AdditionalDetails: q.AdditionalDetails,
	}
	for _, s := range q.Segments {
		out.Segments = append(out.Segments, SegmentResponse(s))
	}
	return out
}

type TotalsResponse struct {
	MaterialCost string `json:"material_cost"`
	DirectCost   string `json:"direct_cost"`
	IndirectCost string `json:"indirect_cost"`
	TotalCost    string `json:"total_cost"`
	Price        string `json:"price"`
}

func FromTotals(t approval.Totals) TotalsResponse {
	return TotalsResponse{
		MaterialCost: approval.FormatMoney(t.Material),
		DirectCost:   approval.FormatMoney(t.Direct),
		IndirectCost: approval.FormatMoney(t.Indirect),
		TotalCost:    approval.FormatMoney(t.TotalCost()),
		Price:        approval.FormatMoney(t.Price),
	}
}

type RequirementResponse struct {
	ID             string                     `json:"id"`
	RequestID      string                     `json:"request_id"`
	Name           string                     `json:"name"`
	SpecialtyID    string                     `json:"specialty_id,omitempty"`
	ScopeID        string                     `json:"scope_id,omitempty"`
	SubscopeID     string                     `json:"subscope_id,omitempty"`
	Certifications []string                   `json:"certifications,omitempty"`
	Quotations     []CompanyQuotationResponse `json:"quotations"`
	Totals         TotalsResponse             `json:"totals"`
}

type ClientQuotationResponse struct {
	RequestID          string    `json:"request_id"`
	FileName           string    `json:"file_name,omitempty"`
	ClientPrice        string    `json:"client_price"`
	Observations       string    `json:"observations,omitempty"`
	QuotationDate      time.Time `json:"quotation_date"`
	SelectedCompanyIDs []string  `json:"selected_company_ids,omitempty"`
}

func FromClientQuotation(q entities.ClientQuotation) ClientQuotationResponse {
	return ClientQuotationResponse{
		RequestID:          q.RequestID,
		FileName:           q.FileName,
		ClientPrice:        approval.FormatMoney(q.ClientPrice),
		Observations:       q.Observations,
		QuotationDate:      q.QuotationDate,
		SelectedCompanyIDs: q.SelectedCompanyIDs,
	}
}

type WorkflowResponse struct {
	RequestID            string                   `json:"request_id"`
	ClientName           string                   `json:"client_name"`
	Requirements         []RequirementResponse    `json:"requirements"`
	OverallTotals        TotalsResponse           `json:"overall_totals"`
	SuggestedClientPrice string                   `json:"suggested_client_price"`
	ClientQuotation      *ClientQuotationResponse `json:"client_quotation,omitempty"`
}

func FromWorkflowState(ws usecase.WorkflowState) WorkflowResponse {
	out := WorkflowResponse{
		RequestID:            ws.RequestID,
		ClientName:           ws.ClientName,
		Requirements:         make([]RequirementResponse, 0, len(ws.Requirements)),
		OverallTotals:        FromTotals(ws.OverallTotals),
		SuggestedClientPrice: approval.FormatMoney(ws.SuggestedClientPrice),
	}
	for _, r := range ws.Requirements {
		rr := RequirementResponse{
			ID:             r.ID,
			RequestID:      r.RequestID,
			Name:           r.Name,
			SpecialtyID:    r.SpecialtyID,
			ScopeID:        r.ScopeID,
			SubscopeID:     r.SubscopeID,
			Certifications: r.Certifications,
			Quotations:     make([]CompanyQuotationResponse, 0, len(r.Quotations)),
			Totals:         FromTotals(ws.RequirementTotals[r.ID]),
		}
		for _, q := range r.Quotations {
			rr.Quotations = append(rr.Quotations, FromCompanyQuotation(q))
		}
		out.Requirements = append(out.Requirements, rr)
	}
	if ws.Existing != nil {
		cq := FromClientQuotation(*ws.Existing)
		out.ClientQuotation = &cq
	}
	return out
}

type TotalsReportResponse struct {
	RequirementTotals    map[string]TotalsResponse `json:"requirement_totals"`
	OverallTotals        TotalsResponse            `json:"overall_totals"`
	SuggestedClientPrice string                    `json:"suggested_client_price"`
}

func FromTotalsReport(r usecase.TotalsReport) TotalsReportResponse {
	out := TotalsReportResponse{
		RequirementTotals:    make(map[string]TotalsResponse, len(r.RequirementTotals)),
		OverallTotals:        FromTotals(r.OverallTotals),
		SuggestedClientPrice: approval.FormatMoney(r.SuggestedClientPrice),
	}
	for id, t := range r.RequirementTotals {
		out.RequirementTotals[id] = FromTotals(t)
	}
	return out
}
