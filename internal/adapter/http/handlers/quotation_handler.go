package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	request "conecta_tool/internal/adapter/http/dto/request"
	response "conecta_tool/internal/adapter/http/dto/response"
	"conecta_tool/internal/domain/approval"
	"conecta_tool/internal/usecase"
	"conecta_tool/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles the quotation aggregation and approval
// workflow for a project request.
type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// GetWorkflow returns the requirements with nested company quotations,
// the decisions seeded from persisted approval state, totals over the
// seeded decisions and the existing client quotation, if any.
func (h *QuotationHandler) GetWorkflow(c *gin.Context) {
	ws, err := h.usecase.GetWorkflow(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkflowState(ws))
}

// ComputeTotals recomputes per-requirement and overall totals for a
// submitted decision set, plus the suggested client price that
// overwrites the price input on every toggle.
func (h *QuotationHandler) ComputeTotals(c *gin.Context) {
	var payload request.TotalsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	report, err := h.usecase.ComputeTotals(c.Request.Context(), c.Param("request_id"), payload.ToDecisions())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTotalsReport(report))
}

// Submit accepts the consolidated submission as multipart form data:
// decisions (JSON array), client_price, observations and an optional
// file (required when no file was stored by a prior submission).
func (h *QuotationHandler) Submit(c *gin.Context) {
	decisions, err := request.ParseDecisionsJSON(c.PostForm("decisions"))
	if err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	in := usecase.SubmitInput{
		RequestID:        c.Param("request_id"),
		Decisions:        decisions,
		ClientPriceInput: c.PostForm("client_price"),
		Observations:     c.PostForm("observations"),
	}

	fileHeader, err := c.FormFile("file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}
	if fileHeader != nil {
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
			return
		}
		defer func(f multipart.File) { _ = f.Close() }(f)
		in.File = f
		in.FileName = fileHeader.Filename
		in.FileContentType = fileHeader.Header.Get("Content-Type")
	}

	saved, err := h.usecase.Submit(c.Request.Context(), in)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClientQuotation(saved))
}

// DownloadFile streams the stored client quotation file.
func (h *QuotationHandler) DownloadFile(c *gin.Context) {
	body, fileName, contentType, err := h.usecase.DownloadFile(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer func(body io.ReadCloser) { _ = body.Close() }(body)

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, body)
}

func mapQuotationError(err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return validationAppError(vErr.Result)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrUnknownQuotationDecision):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientQuotationNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_QUOTATION_NOT_FOUND", "Client quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationFileNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_FILE_NOT_FOUND", "Client quotation file not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// validationAppError keeps each pre-submission failure distinguishable
// so the operator sees which rule blocked the submission.
func validationAppError(r approval.ValidationResult) *pkg.AppError {
	switch r.Code {
	case approval.CodeMissingDecision:
		return pkg.NewDomainErrorSimple(string(r.Code), "Every quotation must be approved or rejected", http.StatusUnprocessableEntity)
	case approval.CodeMissingRejection:
		return pkg.NewDomainErrorSimple(string(r.Code), "Rejected quotations require a reason", http.StatusUnprocessableEntity)
	case approval.CodeNoApprovedQuotations:
		return pkg.NewDomainErrorSimple(string(r.Code), "At least one quotation must be approved", http.StatusUnprocessableEntity)
	case approval.CodeInvalidClientPrice:
		return pkg.NewDomainErrorSimple(string(r.Code), "Client price must be a positive number", http.StatusUnprocessableEntity)
	case approval.CodeMissingFile:
		return pkg.NewDomainErrorSimple(string(r.Code), "A supporting file is required", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Submission validation failed", http.StatusUnprocessableEntity)
	}
}
