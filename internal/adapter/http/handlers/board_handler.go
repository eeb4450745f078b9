package handlers

import (
	"errors"
	"net/http"

	request "conecta_tool/internal/adapter/http/dto/request"
	response "conecta_tool/internal/adapter/http/dto/response"
	"conecta_tool/internal/usecase"
	"conecta_tool/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBoardPayload = pkg.NewDomainErrorSimple("INVALID_BOARD_INPUT", "Invalid board payload", http.StatusBadRequest)
)

// BoardHandler handles HTTP requests for the project activity board:
// the kanban categories/activities and their derived progress.
type BoardHandler struct {
	usecase usecase.IBoardUseCase
}

func NewBoardHandler(uc usecase.IBoardUseCase) *BoardHandler {
	return &BoardHandler{usecase: uc}
}

// GetBoard returns the full board with derived category status/progress
// and the project progress + status label.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	summary, err := h.usecase.GetBoard(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapBoardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBoardSummary(summary))
}

func (h *BoardHandler) CreateCategory(c *gin.Context) {
	var payload request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBoardPayload.HTTPStatus, errInvalidBoardPayload.ToHTTPError())
		return
	}

	cat, err := h.usecase.CreateCategory(c.Request.Context(), c.Param("project_id"), payload.Name, payload.Description)
	if err != nil {
		appErr := mapBoardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *BoardHandler) CreateActivity(c *gin.Context) {
	var payload request.CreateActivityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBoardPayload.HTTPStatus, errInvalidBoardPayload.ToHTTPError())
		return
	}

	a, err := h.usecase.CreateActivity(c.Request.Context(), c.Param("category_id"), payload.ToInput())
	if err != nil {
		appErr := mapBoardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromActivity(a))
}

// UpdateActivityStatus moves an activity between kanban columns. The
// response carries the recomputed project progress and status label so
// the caller can refresh its cached summary without another fetch.
func (h *BoardHandler) UpdateActivityStatus(c *gin.Context) {
	var payload request.UpdateActivityStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBoardPayload.HTTPStatus, errInvalidBoardPayload.ToHTTPError())
		return
	}

	report, err := h.usecase.UpdateActivityStatus(c.Request.Context(), c.Param("activity_id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapBoardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProgressReport(report))
}

func (h *BoardHandler) DeleteActivity(c *gin.Context) {
	report, err := h.usecase.DeleteActivity(c.Request.Context(), c.Param("activity_id"))
	if err != nil {
		appErr := mapBoardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProgressReport(report))
}

func mapBoardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidCategoryID),
		errors.Is(err, usecase.ErrInvalidActivityID),
		errors.Is(err, usecase.ErrInvalidCategoryName),
		errors.Is(err, usecase.ErrInvalidActivityName),
		errors.Is(err, usecase.ErrInvalidActivityStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActivityNotFound):
		return pkg.NewDomainErrorSimple("ACTIVITY_NOT_FOUND", "Activity not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
