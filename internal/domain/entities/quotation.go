package entities

import "time"

// Requirement is one technical line item within a project request. Each
// requirement collects zero or more competing company quotations.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_id-index): request_id
type Requirement struct {
	ID             string             `json:"id"`
	RequestID      string             `json:"request_id"`
	Name           string             `json:"name"`
	SpecialtyID    string             `json:"specialty_id,omitempty"`
	ScopeID        string             `json:"scope_id,omitempty"`
	SubscopeID     string             `json:"subscope_id,omitempty"`
	Certifications []string           `json:"certifications,omitempty"`
	Quotations     []CompanyQuotation `json:"quotations,omitempty"`
}

// Segment is one delivery tranche inside a company quotation.
type Segment struct {
	EstimatedDelivery time.Time `json:"estimated_delivery"`
	Description       string    `json:"description"`
}

// CompanyQuotation is a single associate company's priced response to a
// requirement.
//
// Monetary representation:
//   - MaterialCost/DirectCost/IndirectCost/Price are nullable; absent
//     values count as zero in every aggregation.
//   - Price is the company's asking price, not the sum of the three
//     costs; the two are reported independently.
//
// Approval state:
//   - IsClientApproved is nil until an operator decides. A persisted
//     rejection always carries NonApprovalReason; approving clears it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_id-index): request_id (denormalized so the whole
//     workflow loads with one query)
type CompanyQuotation struct {
	ID                string    `json:"id"`
	CompanyID         string    `json:"company_id"`
	CompanyName       string    `json:"company_name"`
	RequirementID     string    `json:"requirement_id"`
	RequirementName   string    `json:"requirement_name"`
	MaterialCost      *float64  `json:"material_cost,omitempty"`
	DirectCost        *float64  `json:"direct_cost,omitempty"`
	IndirectCost      *float64  `json:"indirect_cost,omitempty"`
	Price             *float64  `json:"price,omitempty"`
	IsClientSelected  bool      `json:"is_client_selected"`
	IsClientApproved  *bool     `json:"is_client_approved,omitempty"`
	NonApprovalReason string    `json:"non_approval_reason,omitempty"`
	StatusID          string    `json:"status_id,omitempty"`
	AdditionalDetails string    `json:"additional_details,omitempty"`
	Segments          []Segment `json:"segments,omitempty"`
}

// ApprovalDecision is one operator decision in the bulk upsert. Reason
// is persisted only when Approved is false.
type ApprovalDecision struct {
	QuotationID string `json:"quotation_id"`
	Approved    bool   `json:"approved"`
	Reason      string `json:"reason,omitempty"`
}

// ClientQuotation is the single consolidated quotation artifact for a
// project request, seeded from the approved company quotations.
//
// Storage model (DynamoDB):
//   - PK: request_id (one artifact per project request; submissions
//     after the first update it in place)
type ClientQuotation struct {
	RequestID          string    `json:"request_id"`
	FileName           string    `json:"file_name"`
	FileKey            string    `json:"file_key"`
	ClientPrice        float64   `json:"client_price"`
	Observations       string    `json:"observations,omitempty"`
	QuotationDate      time.Time `json:"quotation_date"`
	SelectedCompanyIDs []string  `json:"selected_company_ids,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
