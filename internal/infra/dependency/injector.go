// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/docuintelli/backend/config"
	"github.com/docuintelli/backend/internal/application/usecase/goal"
	"github.com/docuintelli/backend/internal/application/usecase/insight"
	"github.com/docuintelli/backend/internal/application/usecase/loan"
	"github.com/docuintelli/backend/internal/application/usecase/notification"
	"github.com/docuintelli/backend/internal/application/usecase/plan"
	"github.com/docuintelli/backend/internal/application/usecase/progress"
	"github.com/docuintelli/backend/internal/infra/server/router"
	"github.com/docuintelli/backend/internal/integration/adapters"
	"github.com/docuintelli/backend/internal/integration/cache"
	"github.com/docuintelli/backend/internal/integration/email"
	"github.com/docuintelli/backend/internal/integration/entrypoint/controller"
	"github.com/docuintelli/backend/internal/integration/entrypoint/middleware"
	"github.com/docuintelli/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthCheck func() bool) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	activityRepo := persistence.NewManualActivityRepository(db)
	notificationRepo := persistence.NewNotificationRepository(db)
	documentRepo := persistence.NewDocumentRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	insightService := adapters.NewGeminiService(cfg.Insights.GeminiAPIKey)
	recalculationLock := cache.NewRecalculationLock(redisClient)
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)

	// Create the progress engine
	baselineCalculator := progress.NewBaselineCalculator(accountRepo, transactionRepo)
	recalculateUseCase := progress.NewRecalculateGoalsUseCase(
		goalRepo,
		accountRepo,
		transactionRepo,
		activityRepo,
		notificationRepo,
		recalculationLock,
	)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, accountRepo, baselineCalculator)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, accountRepo, baselineCalculator)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, activityRepo)
	logActivityUseCase := goal.NewLogActivityUseCase(goalRepo, activityRepo)

	// Create the remaining use cases
	payoffUseCase := loan.NewPayoffUseCase()
	complianceUseCase := plan.NewCheckComplianceUseCase(documentRepo)
	generateInsightsUseCase := insight.NewGenerateInsightsUseCase(goalRepo, accountRepo, transactionRepo, insightService)
	listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)
	markReadUseCase := notification.NewMarkReadUseCase(notificationRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthCheck)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		logActivityUseCase,
		recalculateUseCase,
	)
	loanController := controller.NewLoanController(payoffUseCase)
	planController := controller.NewPlanController(complianceUseCase)
	insightController := controller.NewInsightController(generateInsightsUseCase)
	notificationController := controller.NewNotificationController(listNotificationsUseCase, markReadUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var recalcRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		recalcRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		recalcRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		goalController,
		loanController,
		planController,
		insightController,
		notificationController,
		recalcRateLimiter,
		authMiddleware,
	)

	// Create the email delivery worker
	worker := email.NewWorker(notificationRepo, userRepo, emailSender, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: worker,
	}
}
