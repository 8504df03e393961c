package routes

import (
	"context"
	"fmt"
	"log"

	_ "vehicle_acquisition/docs" // swag init output
	"vehicle_acquisition/internal/adapter/http/handlers"
	"vehicle_acquisition/internal/adapter/persistence/repository"
	"vehicle_acquisition/internal/domain/documents"
	"vehicle_acquisition/internal/domain/outbound"
	"vehicle_acquisition/internal/infrastructure/config"
	"vehicle_acquisition/internal/infrastructure/database"
	"vehicle_acquisition/internal/infrastructure/delivery"
	"vehicle_acquisition/internal/infrastructure/rendering"
	"vehicle_acquisition/internal/infrastructure/storage"
	"vehicle_acquisition/internal/usecase"
	"vehicle_acquisition/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Case         *handlers.CaseHandler
	TimeTracking *handlers.TimeTrackingHandler
	Document     *handlers.DocumentHandler
	Delivery     *handlers.DeliveryHandler
}

// Run will start the server
func Run(cfg *config.Config) {
	h, err := getHandlers(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	router := NewRouter(h)
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the engine with middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCaseRoutes(v1, h)
	return router
}

func getHandlers(ctx context.Context, cfg *config.Config) (Handlers, error) {
	caseRepo, timeRepo, err := getRepositories(ctx, cfg)
	if err != nil {
		return Handlers{}, err
	}

	company := documents.Company{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		Phone:   cfg.Company.Phone,
		Email:   cfg.Company.Email,
	}

	var docStorage interfaces.IDocumentStorage
	if cfg.DocumentsBucket != "" {
		s3Storage, err := storage.NewS3StorageFromRegion(ctx, cfg.AWSRegion, cfg.S3Endpoint, cfg.DocumentsBucket, cfg.DocumentURLTTL)
		if err != nil {
			return Handlers{}, fmt.Errorf("s3 storage: %w", err)
		}
		docStorage = s3Storage
	} else {
		log.Printf("[routes] DOCUMENTS_BUCKET not set, document generation disabled")
	}

	var channel interfaces.IDeliveryChannel
	if cfg.Webhook.URL != "" {
		channel = delivery.NewWebhookClient(cfg.Webhook)
	} else {
		log.Printf("[routes] WEBHOOK_URL not set, delivery disabled")
	}

	timeUseCase := usecase.NewTimeTrackingUseCase(timeRepo, cfg.TimeTrackingMaxRetries)
	caseUseCase := usecase.NewCaseUseCase(caseRepo, timeUseCase)
	documentUseCase := usecase.NewDocumentUseCase(
		caseRepo,
		timeRepo,
		documents.NewAssembler(company),
		rendering.NewPDFRenderer(company.Name),
		docStorage,
	)
	deliveryUseCase := usecase.NewDeliveryUseCase(caseRepo, outbound.NewBuilder(company, nil), channel)

	return Handlers{
		Case:         handlers.NewCaseHandler(caseUseCase),
		TimeTracking: handlers.NewTimeTrackingHandler(timeUseCase),
		Document:     handlers.NewDocumentHandler(documentUseCase),
		Delivery:     handlers.NewDeliveryHandler(deliveryUseCase),
	}, nil
}

func getRepositories(ctx context.Context, cfg *config.Config) (interfaces.ICaseRepository, interfaces.ITimeTrackingRepository, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := database.ConnectPostgres(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := repository.MigratePostgres(db); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		log.Printf("[routes] store=postgres")
		return repository.NewCasePostgresRepository(db), repository.NewTimeTrackingPostgresRepository(db), nil
	default:
		ddb := database.ConnectDynamoDB(ctx, cfg)
		log.Printf("[routes] store=dynamodb cases_table=%s time_tracking_table=%s", cfg.CasesTable, cfg.TimeTrackingTable)
		return repository.NewCaseDynamoRepository(ddb, cfg.CasesTable), repository.NewTimeTrackingDynamoRepository(ddb, cfg.TimeTrackingTable), nil
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
