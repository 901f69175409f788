// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/7LayerLabs/spendsignal2.0/internal/integration/entrypoint/controller"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	authController           *controller.AuthController
	userController           *controller.UserController
	transactionController    *controller.TransactionController
	categorizationController *controller.CategorizationController
	classificationController *controller.ClassificationController
	dashboardController      *controller.DashboardController
	loginRateLimiter         *middleware.RateLimiter
	authMiddleware           *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	transactionController *controller.TransactionController,
	categorizationController *controller.CategorizationController,
	classificationController *controller.ClassificationController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:         healthController,
		authController:           authController,
		userController:           userController,
		transactionController:    transactionController,
		categorizationController: categorizationController,
		classificationController: classificationController,
		dashboardController:      dashboardController,
		loginRateLimiter:         loginRateLimiter,
		authMiddleware:           authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
				transactions.POST("/import", r.transactionController.Import)
				transactions.POST("/sync", r.transactionController.Sync)

				// Zone decisions are addressed by transaction
				if r.categorizationController != nil {
					transactions.PUT("/:id/zone", r.categorizationController.Categorize)
				}
			}
		}

		// Categorization routes (require authentication)
		if r.categorizationController != nil && r.authMiddleware != nil {
			categorizations := v1.Group("/categorizations")
			categorizations.Use(r.authMiddleware.Authenticate())
			{
				categorizations.POST("/auto", r.categorizationController.AutoCategorize)
				categorizations.GET("/summary", r.categorizationController.Summary)
			}
		}

		// Classification preview routes (require authentication)
		if r.classificationController != nil && r.authMiddleware != nil {
			classify := v1.Group("/classify")
			classify.Use(r.authMiddleware.Authenticate())
			{
				classify.POST("", r.classificationController.Preview)
				classify.POST("/batch", r.classificationController.PreviewBatch)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/insights", r.dashboardController.GetInsights)
				dashboard.GET("/health-score", r.dashboardController.GetHealthScore)
				dashboard.GET("/trends", r.dashboardController.GetTrends)
				dashboard.POST("/digest", r.dashboardController.SendDigest)
			}
		}

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.PATCH("/me", r.userController.UpdateSettings)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
