package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"math"
	"path"
	"strings"
	"time"

	"conecta_tool/internal/domain/approval"
	"conecta_tool/internal/domain/entities"
	"conecta_tool/internal/usecase/interfaces"
)

var (
	ErrInvalidRequestID         = errors.New("invalid project request id")
	ErrClientQuotationNotFound  = errors.New("client quotation not found")
	ErrQuotationFileNotFound    = errors.New("client quotation file not found")
	ErrUnknownQuotationDecision = errors.New("decision references unknown quotation")
)

// fallbackClientName is rendered when the independent client-name fetch
// fails; a missing name never blocks the workflow.
const fallbackClientName = "N/A"

// ValidationError wraps a failed pre-submission check. It is a value,
// not a panic: handlers map the code to its own message and status.
type ValidationError struct {
	Result approval.ValidationResult
}

func (e *ValidationError) Error() string {
	if e.Result.QuotationID != "" {
		return "validation failed: " + string(e.Result.Code) + " (quotation " + e.Result.QuotationID + ")"
	}
	return "validation failed: " + string(e.Result.Code)
}

// WorkflowState is everything the approval workflow needs on open:
// requirements with nested quotations, decisions seeded from persisted
// approval data, totals over the seeded decisions, and the existing
// client quotation when one was already submitted.
type WorkflowState struct {
	RequestID            string
	ClientName           string
	Requirements         []entities.Requirement
	Decisions            approval.State
	RequirementTotals    map[string]approval.Totals
	OverallTotals        approval.Totals
	SuggestedClientPrice float64
	Existing             *entities.ClientQuotation
}

// TotalsReport is the stateless recompute returned after a decision-set
// change: totals restricted to approved quotations plus the suggested
// client price that overwrites the price input on every toggle.
type TotalsReport struct {
	RequirementTotals    map[string]approval.Totals
	OverallTotals        approval.Totals
	SuggestedClientPrice float64
}

// SubmitInput carries one consolidated submission. File is nil when the
// operator kept the previously uploaded document.
type SubmitInput struct {
	RequestID        string
	Decisions        []entities.ApprovalDecision
	ClientPriceInput string
	Observations     string
	FileName         string
	FileContentType  string
	File             io.Reader
}

// IQuotationUseCase exposes the quotation aggregation and approval
// workflow for a project request.
type IQuotationUseCase interface {
	GetWorkflow(ctx context.Context, requestID string) (WorkflowState, error)
	ComputeTotals(ctx context.Context, requestID string, decisions []entities.ApprovalDecision) (TotalsReport, error)
	Submit(ctx context.Context, in SubmitInput) (entities.ClientQuotation, error)
	DownloadFile(ctx context.Context, requestID string) (io.ReadCloser, string, string, error)
}

type QuotationUseCase struct {
	requirements     interfaces.IRequirementRepository
	clientQuotations interfaces.IClientQuotationRepository
	requests         interfaces.IProjectRequestRepository
	files            interfaces.IFileStore
	now              func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	requirements interfaces.IRequirementRepository,
	clientQuotations interfaces.IClientQuotationRepository,
	requests interfaces.IProjectRequestRepository,
	files interfaces.IFileStore,
) *QuotationUseCase {
	return &QuotationUseCase{
		requirements:     requirements,
		clientQuotations: clientQuotations,
		requests:         requests,
		files:            files,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuotationUseCase) GetWorkflow(ctx context.Context, requestID string) (WorkflowState, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return WorkflowState{}, ErrInvalidRequestID
	}

	reqs, err := u.requirements.ListByRequestID(ctx, requestID)
	if err != nil {
		return WorkflowState{}, err
	}

	// Independent fetch; a failure degrades to the placeholder instead
	// of blocking the workflow.
	clientName, err := u.requests.GetClientName(ctx, requestID)
	if err != nil || strings.TrimSpace(clientName) == "" {
		if err != nil {
			log.Printf("[quotation][usecase] client name fetch failed request_id=%s err=%v", requestID, err)
		}
		clientName = fallbackClientName
	}

	state := approval.FromQuotations(reqs)
	perReq, overall := approval.ComputeTotals(reqs, state)

	ws := WorkflowState{
		RequestID:            requestID,
		ClientName:           clientName,
		Requirements:         reqs,
		Decisions:            state,
		RequirementTotals:    perReq,
		OverallTotals:        overall,
		SuggestedClientPrice: overall.Price,
	}

	existing, err := u.clientQuotations.GetByRequestID(ctx, requestID)
	if err != nil {
		return WorkflowState{}, err
	}
	if existing.RequestID != "" {
		ws.Existing = &existing
	}
	return ws, nil
}

func (u *QuotationUseCase) ComputeTotals(ctx context.Context, requestID string, decisions []entities.ApprovalDecision) (TotalsReport, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return TotalsReport{}, ErrInvalidRequestID
	}

	reqs, err := u.requirements.ListByRequestID(ctx, requestID)
	if err != nil {
		return TotalsReport{}, err
	}
	if err := checkKnownQuotations(reqs, decisions); err != nil {
		return TotalsReport{}, err
	}

	state := approval.FromDecisions(decisions)
	perReq, overall := approval.ComputeTotals(reqs, state)
	return TotalsReport{
		RequirementTotals:    perReq,
		OverallTotals:        overall,
		SuggestedClientPrice: overall.Price,
	}, nil
}

// Submit validates, persists the decision batch, then persists the
// client quotation. Strictly sequential: a failed batch aborts before
// the client quotation is touched, so nothing is partially persisted
// across the two writes.
func (u *QuotationUseCase) Submit(ctx context.Context, in SubmitInput) (entities.ClientQuotation, error) {
	requestID := strings.TrimSpace(in.RequestID)
	if requestID == "" {
		return entities.ClientQuotation{}, ErrInvalidRequestID
	}

	reqs, err := u.requirements.ListByRequestID(ctx, requestID)
	if err != nil {
		return entities.ClientQuotation{}, err
	}
	if err := checkKnownQuotations(reqs, in.Decisions); err != nil {
		return entities.ClientQuotation{}, err
	}

	existing, err := u.clientQuotations.GetByRequestID(ctx, requestID)
	if err != nil {
		return entities.ClientQuotation{}, err
	}
	hasExistingFile := existing.FileKey != ""
	hasNewFile := in.File != nil

	state := approval.FromDecisions(in.Decisions)
	result := approval.ValidateBeforeSubmit(reqs, state, in.ClientPriceInput, hasExistingFile, hasNewFile)
	if !result.OK() {
		return entities.ClientQuotation{}, &ValidationError{Result: result}
	}

	log.Printf("[quotation][usecase] persisting decisions request_id=%s count=%d", requestID, len(in.Decisions))
	if err := u.requirements.ApplyDecisions(ctx, state.Decisions()); err != nil {
		log.Printf("[quotation][usecase] decision batch failed request_id=%s err=%v", requestID, err)
		return entities.ClientQuotation{}, err
	}

	cq := entities.ClientQuotation{
		RequestID:          requestID,
		FileName:           existing.FileName,
		FileKey:            existing.FileKey,
		ClientPrice:        roundMoney(result.ClientPrice),
		Observations:       strings.TrimSpace(in.Observations),
		QuotationDate:      u.now(),
		SelectedCompanyIDs: approvedCompanyIDs(reqs, state),
		CreatedAt:          existing.CreatedAt,
	}
	if cq.CreatedAt.IsZero() {
		cq.CreatedAt = cq.QuotationDate
	}
	cq.UpdatedAt = cq.QuotationDate

	if hasNewFile {
		key := path.Join("client-quotations", requestID, strings.TrimSpace(in.FileName))
		if err := u.files.Upload(ctx, key, in.FileContentType, in.File); err != nil {
			log.Printf("[quotation][usecase] file upload failed request_id=%s err=%v", requestID, err)
			return entities.ClientQuotation{}, err
		}
		cq.FileName = strings.TrimSpace(in.FileName)
		cq.FileKey = key
	}

	saved, err := u.clientQuotations.Save(ctx, cq)
	if err != nil {
		log.Printf("[quotation][usecase] client quotation save failed request_id=%s err=%v", requestID, err)
		return entities.ClientQuotation{}, err
	}
	return saved, nil
}

func (u *QuotationUseCase) DownloadFile(ctx context.Context, requestID string) (io.ReadCloser, string, string, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, "", "", ErrInvalidRequestID
	}

	cq, err := u.clientQuotations.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, "", "", err
	}
	if cq.RequestID == "" {
		return nil, "", "", ErrClientQuotationNotFound
	}
	if cq.FileKey == "" {
		return nil, "", "", ErrQuotationFileNotFound
	}

	body, contentType, err := u.files.Download(ctx, cq.FileKey)
	if err != nil {
		return nil, "", "", err
	}
	return body, cq.FileName, contentType, nil
}

func checkKnownQuotations(reqs []entities.Requirement, decisions []entities.ApprovalDecision) error {
	known := make(map[string]struct{})
	for _, r := range reqs {
		for _, q := range r.Quotations {
			known[q.ID] = struct{}{}
		}
	}
	for _, d := range decisions {
		if _, ok := known[d.QuotationID]; !ok {
			return ErrUnknownQuotationDecision
		}
	}
	return nil
}

func approvedCompanyIDs(reqs []entities.Requirement, state approval.State) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, r := range reqs {
		for _, q := range r.Quotations {
			if !state[q.ID].IsApproved() {
				continue
			}
			if _, ok := seen[q.CompanyID]; ok {
				continue
			}
			seen[q.CompanyID] = struct{}{}
			ids = append(ids, q.CompanyID)
		}
	}
	return ids
}

// roundMoney fixes the persisted price to two decimal places, matching
// the displayed formatting.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
