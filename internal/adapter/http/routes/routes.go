package routes

import (
	"context"
	"log"
	"time"

	_ "nishad_gateway/docs" // generated by swag init
	"nishad_gateway/internal/adapter/http/dto/request"
	"nishad_gateway/internal/adapter/http/handlers"
	"nishad_gateway/internal/adapter/http/middleware"
	repository2 "nishad_gateway/internal/adapter/persistence/repository"
	"nishad_gateway/internal/config"
	"nishad_gateway/internal/domain/estimator"
	"nishad_gateway/internal/infrastructure/auth"
	"nishad_gateway/internal/infrastructure/database"
	"nishad_gateway/internal/infrastructure/metrics"
	"nishad_gateway/internal/infrastructure/notification"
	"nishad_gateway/internal/infrastructure/report"
	"nishad_gateway/internal/infrastructure/storage"
	"nishad_gateway/internal/usecase"
	"nishad_gateway/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/crypto/bcrypt"
)

var router *gin.Engine

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	router = newRouter(cfg)

	getRoutes(cfg)

	log.Printf("[http] listening addr=%s env=%s", cfg.HTTPAddr, cfg.Env)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// newRouter sets the gin mode before the engine is built.
func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	setMiddlewares(r, cfg)

	// Swagger documentation endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", middleware.MetricsAuth(cfg.MetricsToken), gin.WrapH(promhttp.Handler()))
	return r
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB()

	if cfg.DynamoAutoCreateTables {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		if err := database.EnsureTables(ctx, ddb, repository2.TableSpecs()...); err != nil {
			log.Fatalf("Failed to create DynamoDB tables: %v", err)
		}
		cancel()
	}

	if err := request.RegisterValidators(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	leadRepo := repository2.NewLeadDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	subServiceRepo := repository2.NewSubServiceDynamoRepository(ddb)
	contentRepo := repository2.NewContentDynamoRepository(ddb)
	adminRepo := repository2.NewAdminDynamoRepository(ddb)

	var notifier interfaces.ILeadNotifier = notification.NoopLeadNotifier{}
	if cfg.EmailEnabled() {
		notifier = notification.NewSMTPLeadNotifier(
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword,
			cfg.SMTPFromEmail, cfg.SMTPFromName, cfg.LeadNotifyTo,
		)
	} else {
		log.Printf("[lead] SMTP not configured, new-lead emails disabled")
	}

	var objectStorage interfaces.IObjectStorage
	if cfg.IsMinIOEnabled() {
		minioStorage, err := storage.NewMinIOStorage(storage.Config{
			Endpoint:  cfg.MinIOEndpoint,
			AccessKey: cfg.MinIOAccessKey,
			SecretKey: cfg.MinIOSecretKey,
			UseSSL:    cfg.MinIOUseSSL,
			Bucket:    cfg.MinIOBucket,
			PublicURL: cfg.MinIOPublicURL,
		})
		if err != nil {
			log.Fatalf("Failed to create MinIO client: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := minioStorage.EnsureBucketExists(ctx); err != nil {
			log.Printf("[storage] bucket check failed bucket=%s err=%v", cfg.MinIOBucket, err)
		}
		cancel()
		objectStorage = minioStorage
	} else {
		log.Printf("[storage] MinIO not configured, uploads disabled")
	}

	engine := estimator.New(estimator.DefaultPricingTables(), estimator.WithLocation(cfg.Timezone))

	leadUseCase := usecase.NewLeadUseCase(leadRepo, notifier, report.NewLeadsExcelExporter(), cfg.Timezone, m)
	estimateUseCase := usecase.NewEstimateUseCase(engine, leadUseCase, report.NewPDFRenderer(), m)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, subServiceRepo, contentRepo)
	subServiceUseCase := usecase.NewSubServiceUseCase(serviceRepo, subServiceRepo, contentRepo, objectStorage, cfg.UploadMaxBytes)
	contentUseCase := usecase.NewContentUseCase(subServiceRepo, contentRepo)
	uploadUseCase := usecase.NewUploadUseCase(objectStorage, cfg.UploadMaxBytes, cfg.SignedUploadTTL)
	adminAuthUseCase := usecase.NewAdminAuthUseCase(
		adminRepo,
		auth.NewTokenService(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		auth.NewBcryptHasher(bcrypt.DefaultCost),
	)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := adminAuthUseCase.EnsureBootstrapAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
			log.Printf("[admin] bootstrap admin failed email=%s err=%v", cfg.AdminEmail, err)
		}
		cancel()
	}

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	leadHandler := handlers.NewLeadHandler(leadUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	subServiceHandler := handlers.NewSubServiceHandler(subServiceUseCase)
	contentHandler := handlers.NewContentHandler(contentUseCase)
	uploadHandler := handlers.NewUploadHandler(uploadUseCase)
	adminAuthHandler := handlers.NewAdminAuthHandler(adminAuthUseCase, handlers.CookieConfig{
		Domain:   cfg.CookieDomain,
		Secure:   cfg.CookieSecure,
		SameSite: cfg.CookieSameSite,
	})

	requireAdmin := middleware.AdminAuth(adminAuthUseCase)
	optionalAdmin := middleware.OptionalAdmin(adminAuthUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, estimateHandler, middleware.NewIPRateLimiter(cfg.EstimateRatePerMinute))
	addAdminRoutes(v1, adminAuthHandler, requireAdmin, middleware.NewIPRateLimiter(cfg.LoginRatePerMinute))
	addLeadRoutes(v1, leadHandler, requireAdmin)
	addServiceRoutes(v1, serviceHandler, subServiceHandler, requireAdmin, optionalAdmin)
	addSubServiceRoutes(v1, subServiceHandler, contentHandler, requireAdmin, optionalAdmin)
	addUploadRoutes(v1, uploadHandler, requireAdmin)
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: cfg.CORSAllowCreds,
		MaxAge:           12 * time.Hour,
	}))
	router.MaxMultipartMemory = cfg.UploadMaxBytes
}
