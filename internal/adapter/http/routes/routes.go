package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "rentalquotes/docs" // This will be auto-generated
	"rentalquotes/internal/adapter/http/handlers"
	repository2 "rentalquotes/internal/adapter/persistence/repository"
	"rentalquotes/internal/domain/matching"
	"rentalquotes/internal/domain/smarttag"
	"rentalquotes/internal/infrastructure/database"
	"rentalquotes/internal/infrastructure/geoip"
	"rentalquotes/internal/infrastructure/notification"
	"rentalquotes/internal/infrastructure/secrets"
	"rentalquotes/internal/platform/logging"
	"rentalquotes/internal/usecase"
	"rentalquotes/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(port()))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()
	logger := logging.New(os.Getenv("APP_ENV"))

	ddb := database.ConnectDynamoDB(ctx)

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	formConfigRepo := repository2.NewFormConfigDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)

	geoResolver := geoip.New(os.Getenv("GEOIP_ENDPOINT"), logger)
	secretProvider := secrets.NewEnvProvider()

	settings := notification.SettingsFromEnv()
	var notifier interfaces.INotificationService
	smtpNotifier, err := notification.NewSMTPNotifier(settings, quoteRepo, secretProvider, logger)
	if err != nil {
		log.Fatalf("Notifier not configured: %v", err)
	}
	notifier = smtpNotifier

	tags := smarttag.NewResolver(smarttag.SiteContext{
		SiteName:   settings.SiteName,
		SiteURL:    settings.SiteURL,
		AdminEmail: settings.AdminEmail,
	}, geoResolver.ResolveLocation)

	derivation := usecase.NewDerivationPipeline(
		formConfigRepo,
		catalogRepo,
		quoteRepo,
		notifier,
		tags,
		matching.DefaultConfig(),
		defaultDeposit(),
		logger,
	)
	quickSend := usecase.NewQuickSendUseCase(quoteRepo, notifier, secretProvider, logger)
	quoteQuery := usecase.NewQuoteQueryUseCase(quoteRepo)

	submissionHandler := handlers.NewSubmissionHandler(derivation)
	quickSendHandler := handlers.NewQuickSendHandler(quickSend)
	quoteHandler := handlers.NewQuoteHandler(quoteQuery)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, submissionHandler, quickSendHandler, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func defaultDeposit() float64 {
	if v := os.Getenv("DEFAULT_DEPOSIT"); v != "" {
		if d, err := strconv.ParseFloat(v, 64); err == nil && d > 0 {
			return d
		}
	}
	return usecase.DefaultDepositAmount
}

func port() int {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			return p
		}
	}
	return defaultPort
}
