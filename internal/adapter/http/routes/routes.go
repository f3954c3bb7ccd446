package routes

import (
	"log"
	"os"
	"strconv"
	_ "thaki_platform/docs" // This will be auto-generated
	"thaki_platform/internal/adapter/http/handlers"
	repository2 "thaki_platform/internal/adapter/persistence/repository"
	"thaki_platform/internal/infrastructure/ai"
	"thaki_platform/internal/infrastructure/database"
	"thaki_platform/internal/infrastructure/metrics"
	"thaki_platform/internal/infrastructure/payments"
	"thaki_platform/internal/usecase"
	"thaki_platform/internal/usecase/interfaces"

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
	router.GET("/metrics", metrics.Handler())

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	repo := repository2.NewRecordRepository(newRecordStore())

	interestUseCase := usecase.NewInterestUseCase(repo)
	reviewUseCase := usecase.NewReviewUseCase(repo)
	paymentUseCase := usecase.NewPaymentUseCase(repo, newPaymentGateway())
	messageUseCase := usecase.NewMessageUseCase(repo)
	applicationUseCase := usecase.NewApplicationUseCase(repo)
	orderUseCase := usecase.NewOrderUseCase(repo)
	visitorUseCase := usecase.NewVisitorUseCase(repo)
	dashboardUseCase := usecase.NewDashboardUseCase(repo)
	toolUseCase := usecase.NewToolUseCase(repo, newGenerativeGateway())

	interestHandler := handlers.NewInterestHandler(interestUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	messageHandler := handlers.NewMessageHandler(messageUseCase)
	applicationHandler := handlers.NewApplicationHandler(applicationUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	visitorHandler := handlers.NewVisitorHandler(visitorUseCase)
	toolHandler := handlers.NewToolHandler(toolUseCase)
	adminHandler := handlers.NewAdminHandler(dashboardUseCase, messageUseCase, reviewUseCase, applicationUseCase, orderUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSiteRoutes(v1, interestHandler, reviewHandler, paymentHandler, messageHandler, applicationHandler, orderHandler, visitorHandler, toolHandler)
	addAdminRoutes(v1, adminHandler, paymentHandler)
}

// newRecordStore picks the key-value backing from STORE_DRIVER. DynamoDB is
// the deployed default, sqlite and memory cover local runs and tests.
func newRecordStore() interfaces.IKeyValueStore {
	driver := getenvDefault("STORE_DRIVER", "dynamodb")

	switch driver {
	case "sqlite":
		store, err := repository2.OpenSQLiteKVStore(getenvDefault("RECORDS_DB", "records.db"))
		if err != nil {
			log.Fatalf("Failed to open sqlite store: %v", err)
		}
		return store
	case "memory":
		return repository2.NewMemoryKVStore()
	default:
		return repository2.NewDynamoKVStore(database.ConnectDynamoDB())
	}
}

func newPaymentGateway() interfaces.IPaymentGateway {
	gateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
		return nil
	}
	return gateway
}

func newGenerativeGateway() interfaces.IGenerativeGateway {
	gateway, err := ai.NewGeminiGateway(os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Printf("Gemini gateway not configured: %v", err)
		return nil
	}
	return gateway
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(metrics.Middleware())
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
