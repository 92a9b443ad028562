package routes

import (
	"log"
	_ "os_service_api/docs" // This will be auto-generated
	"os_service_api/internal/adapter/http/handlers"
	repository2 "os_service_api/internal/adapter/persistence/repository"
	"os_service_api/internal/infrastructure/database"
	"os_service_api/internal/infrastructure/payments"
	"os_service_api/internal/usecase"
	"os_service_api/internal/usecase/interfaces"
	"os"
	"strconv"

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

	workOrderRepo := repository2.NewWorkOrderDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentRecordDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	dispatcher := usecase.NewSideEffectDispatcher(notificationRepo, paymentRepo, quoteRepo, paymentGateway)
	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo, quoteRepo, dispatcher)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, workOrderUseCase)
	reconcileUseCase := usecase.NewReconcileUseCase(workOrderRepo, quoteRepo, dispatcher)

	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase, reconcileUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkOrderRoutes(v1, workOrderHandler, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
