package routes

import (
	"log"
	"os"
	"strconv"

	_ "logistica_xpto/docs" // This will be auto-generated
	"logistica_xpto/internal/adapter/http/handlers"
	"logistica_xpto/internal/adapter/http/middleware"
	repository2 "logistica_xpto/internal/adapter/persistence/repository"
	"logistica_xpto/internal/infrastructure/database"
	"logistica_xpto/internal/infrastructure/payments"
	"logistica_xpto/internal/usecase"
	"logistica_xpto/internal/usecase/interfaces"

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

	seqRepo := repository2.NewSequenceDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	driverRepo := repository2.NewDriverDynamoRepository(ddb)
	truckRepo := repository2.NewTruckDynamoRepository(ddb)
	shipmentRepo := repository2.NewShipmentDynamoRepository(ddb)
	billRepo := repository2.NewBillDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	clientUseCase := usecase.NewClientUseCase(clientRepo, seqRepo)
	driverUseCase := usecase.NewDriverUseCase(driverRepo, seqRepo)
	truckUseCase := usecase.NewTruckUseCase(truckRepo, seqRepo)
	shipmentUseCase := usecase.NewShipmentUseCase(shipmentRepo, truckRepo, driverRepo, clientRepo, seqRepo)
	billUseCase := usecase.NewBillUseCase(billRepo, clientRepo, shipmentRepo, seqRepo, paymentGateway)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	driverHandler := handlers.NewDriverHandler(driverUseCase)
	truckHandler := handlers.NewTruckHandler(truckUseCase)
	shipmentHandler := handlers.NewShipmentHandler(shipmentUseCase)
	billHandler := handlers.NewBillHandler(billUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas protegidas quando AUTH_JWT_SECRET esta definido
	resources := v1.Group("")
	resources.Use(middleware.Auth(os.Getenv("AUTH_JWT_SECRET")))
	addLogisticsRoutes(resources, clientHandler, driverHandler, truckHandler, shipmentHandler, billHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
