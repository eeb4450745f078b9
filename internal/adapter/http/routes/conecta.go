package routes

import (
	"conecta_tool/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects        = "/projects"
	PathCategories      = "/categories"
	PathActivities      = "/activities"
	PathProjectRequests = "/project-requests"
)

func addBoardRoutes(rg *gin.RouterGroup, boardHandler *handlers.BoardHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("/:project_id/board", boardHandler.GetBoard)
		projects.POST("/:project_id/categories", boardHandler.CreateCategory)
	}

	categories := rg.Group(PathCategories)
	{
		categories.POST("/:category_id/activities", boardHandler.CreateActivity)
	}

	activities := rg.Group(PathActivities)
	{
		activities.PATCH("/:activity_id/status", boardHandler.UpdateActivityStatus)
		activities.DELETE("/:activity_id", boardHandler.DeleteActivity)
	}
}

func addQuotationRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler) {
	requests := rg.Group(PathProjectRequests)
	{
		requests.GET("/:request_id/quotations", quotationHandler.GetWorkflow)
		requests.POST("/:request_id/quotations/totals", quotationHandler.ComputeTotals)
		requests.POST("/:request_id/quotations/submit", quotationHandler.Submit)
		requests.GET("/:request_id/quotations/file", quotationHandler.DownloadFile)
	}
}
