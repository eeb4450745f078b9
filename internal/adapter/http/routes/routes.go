package routes

import (
	"log"
	"strconv"

	_ "conecta_tool/docs" // This will be auto-generated
	"conecta_tool/internal/adapter/http/handlers"
	repository2 "conecta_tool/internal/adapter/persistence/repository"
	"conecta_tool/internal/infrastructure/database"
	"conecta_tool/internal/infrastructure/storage"
	"conecta_tool/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	files := storage.ConnectS3()

	activityRepo := repository2.NewActivityDynamoRepository(ddb)
	categoryRepo := repository2.NewCategoryDynamoRepository(ddb)
	requirementRepo := repository2.NewRequirementDynamoRepository(ddb)
	clientQuotationRepo := repository2.NewClientQuotationDynamoRepository(ddb)
	projectRequestRepo := repository2.NewProjectRequestDynamoRepository(ddb)

	loader := usecase.NewFallbackBoardLoader(
		usecase.NewJoinedBoardLoader(categoryRepo, activityRepo),
		usecase.NewPerCategoryBoardLoader(categoryRepo, activityRepo),
	)

	boardUseCase := usecase.NewBoardUseCase(loader, categoryRepo, activityRepo)
	quotationUseCase := usecase.NewQuotationUseCase(requirementRepo, clientQuotationRepo, projectRequestRepo, files)

	boardHandler := handlers.NewBoardHandler(boardUseCase)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBoardRoutes(v1, boardHandler)
	addQuotationRoutes(v1, quotationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
