package approval

import (
	"strings"

	"conecta_tool/internal/domain/entities"
)

// ValidationCode discriminates the pre-submission failures. Each blocks
// submission before any network call and maps to its own operator-facing
// message.
type ValidationCode string

const (
	CodeOK                   ValidationCode = "OK"
	CodeMissingDecision      ValidationCode = "MISSING_DECISION"
	CodeMissingRejection     ValidationCode = "MISSING_REJECTION_REASON"
	CodeNoApprovedQuotations ValidationCode = "NO_APPROVED_QUOTATIONS"
	CodeInvalidClientPrice   ValidationCode = "INVALID_CLIENT_PRICE"
	CodeMissingFile          ValidationCode = "MISSING_FILE"
)

// ValidationResult is the discriminated outcome of ValidateBeforeSubmit.
// QuotationID names the offending quotation for the per-quotation
// failures; ClientPrice carries the parsed price when validation passes
// so the caller does not parse twice.
type ValidationResult struct {
	Code        ValidationCode
	QuotationID string
	ClientPrice float64
}

func (r ValidationResult) OK() bool {
	return r.Code == CodeOK
}

// ValidateBeforeSubmit runs the ordered completeness checks:
//
//  1. every quotation has an explicit decision,
//  2. every rejection carries a non-blank reason,
//  3. at least one quotation is approved,
//  4. the client price input parses to a positive number,
//  5. a supporting file exists (previously stored or newly provided).
func ValidateBeforeSubmit(
	requirements []entities.Requirement,
	state State,
	clientPriceInput string,
	hasExistingFile bool,
	hasNewFile bool,
) ValidationResult {
	// Each check scans every quotation before the next check starts, so
	// an undecided quotation wins over a blank rejection reason even
	// when the blank reason comes first in iteration order.
	for _, r := range requirements {
		for _, q := range r.Quotations {
			if d, ok := state[q.ID]; !ok || !d.Decided() {
				return ValidationResult{Code: CodeMissingDecision, QuotationID: q.ID}
			}
		}
	}

	approvedCount := 0
	for _, r := range requirements {
		for _, q := range r.Quotations {
			d := state[q.ID]
			if d.IsRejected() && strings.TrimSpace(d.RejectionReason) == "" {
				return ValidationResult{Code: CodeMissingRejection, QuotationID: q.ID}
			}
			if d.IsApproved() {
				approvedCount++
			}
		}
	}
	if approvedCount == 0 {
		return ValidationResult{Code: CodeNoApprovedQuotations}
	}

	price, err := ParseMoney(clientPriceInput)
	if err != nil || price <= 0 {
		return ValidationResult{Code: CodeInvalidClientPrice}
	}

	if !hasExistingFile && !hasNewFile {
		return ValidationResult{Code: CodeMissingFile}
	}

	return ValidationResult{Code: CodeOK, ClientPrice: price}
}
