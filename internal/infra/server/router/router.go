// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/docuintelli/backend/internal/integration/entrypoint/controller"
	"github.com/docuintelli/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	goalController         *controller.GoalController
	loanController         *controller.LoanController
	planController         *controller.PlanController
	insightController      *controller.InsightController
	notificationController *controller.NotificationController
	recalcRateLimiter      *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	goalController *controller.GoalController,
	loanController *controller.LoanController,
	planController *controller.PlanController,
	insightController *controller.InsightController,
	notificationController *controller.NotificationController,
	recalcRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		goalController:         goalController,
		loanController:         loanController,
		planController:         planController,
		insightController:      insightController,
		notificationController: notificationController,
		recalcRateLimiter:      recalcRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

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
	v1 := r.engine.Group("/api/v1")
	{
		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/:id", r.goalController.Get)
				goals.PATCH("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
				goals.POST("/:id/activities", r.goalController.LogActivity)

				// Recalculation is the only expensive endpoint, rate limit it
				if r.recalcRateLimiter != nil {
					goals.POST("/recalculate", r.recalcRateLimiter.Middleware(), r.goalController.Recalculate)
				} else {
					goals.POST("/recalculate", r.goalController.Recalculate)
				}
			}
		}

		// Loan analysis routes (require authentication)
		if r.loanController != nil && r.authMiddleware != nil {
			loans := v1.Group("/loans")
			loans.Use(r.authMiddleware.Authenticate())
			{
				loans.POST("/payoff", r.loanController.Payoff)
			}
		}

		// Plan compliance routes (require authentication)
		if r.planController != nil && r.authMiddleware != nil {
			plans := v1.Group("/plans")
			plans.Use(r.authMiddleware.Authenticate())
			{
				plans.GET("/compliance", r.planController.CheckCompliance)
			}
		}

		// AI insight routes (require authentication)
		if r.insightController != nil && r.authMiddleware != nil {
			insights := v1.Group("/insights")
			insights.Use(r.authMiddleware.Authenticate())
			{
				insights.POST("", r.insightController.Generate)
			}
		}

		// Notification routes (require authentication)
		if r.notificationController != nil && r.authMiddleware != nil {
			notifications := v1.Group("/notifications")
			notifications.Use(r.authMiddleware.Authenticate())
			{
				notifications.GET("", r.notificationController.List)
				notifications.PATCH("/:id/read", r.notificationController.MarkRead)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
