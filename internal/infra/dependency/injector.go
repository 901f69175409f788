// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/7LayerLabs/spendsignal2.0/config"
	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/auth"
	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/categorization"
	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/dashboard"
	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/transaction"
	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/user"
	"github.com/7LayerLabs/spendsignal2.0/internal/infra/server/router"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/adapters"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/email"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/entrypoint/controller"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/entrypoint/middleware"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	categorizationRepo := persistence.NewCategorizationRepository(db)
	importBatchRepo := persistence.NewImportBatchRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.URL,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	insightCache := adapters.NewInsightCache(redisClient)

	zoneAdvisor := adapters.NewGeminiZoneAdvisor(cfg.Gemini.APIKey)
	bankProvider := adapters.NewPlaidProvider(adapters.PlaidConfig{
		ClientID:    cfg.Plaid.ClientID,
		Secret:      cfg.Plaid.Secret,
		Environment: cfg.Plaid.Environment,
		AccessToken: cfg.Plaid.AccessToken,
	})
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create user use cases
	updateSettingsUseCase := user.NewUpdateSettingsUseCase(userRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	importCSVUseCase := transaction.NewImportCSVUseCase(transactionRepo, importBatchRepo)
	syncTransactionsUseCase := transaction.NewSyncTransactionsUseCase(transactionRepo, importBatchRepo, bankProvider)

	// Create categorization use cases
	categorizeUseCase := categorization.NewCategorizeTransactionUseCase(transactionRepo, categorizationRepo)
	autoCategorizeUseCase := categorization.NewAutoCategorizeUseCase(transactionRepo, categorizationRepo, zoneAdvisor)
	zoneSummaryUseCase := categorization.NewGetZoneSummaryUseCase(transactionRepo, categorizationRepo)

	// Create dashboard use cases
	getInsightsUseCase := dashboard.NewGetInsightsUseCase(transactionRepo, categorizationRepo, userRepo, insightCache)
	getHealthScoreUseCase := dashboard.NewGetHealthScoreUseCase(transactionRepo, categorizationRepo)
	getTrendsUseCase := dashboard.NewGetTrendsUseCase(transactionRepo, categorizationRepo)
	sendDigestUseCase := dashboard.NewSendDigestUseCase(userRepo, transactionRepo, categorizationRepo, emailSender)

	// Create controllers
	healthController := controller.NewHealthController(db)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	userController := controller.NewUserController(updateSettingsUseCase)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		deleteTransactionUseCase,
		importCSVUseCase,
		syncTransactionsUseCase,
	)

	categorizationController := controller.NewCategorizationController(
		categorizeUseCase,
		autoCategorizeUseCase,
		zoneSummaryUseCase,
	)

	classificationController := controller.NewClassificationController()

	dashboardController := controller.NewDashboardController(
		getInsightsUseCase,
		getHealthScoreUseCase,
		getTrendsUseCase,
		sendDigestUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		transactionController,
		categorizationController,
		classificationController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
