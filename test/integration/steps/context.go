// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/docuintelli/backend/config"
	"github.com/docuintelli/backend/internal/application/adapter"
	"github.com/docuintelli/backend/internal/domain/entity"
	"github.com/docuintelli/backend/internal/infra/dependency"
	"github.com/docuintelli/backend/internal/integration/adapters"
	"github.com/docuintelli/backend/internal/integration/persistence"
	"github.com/docuintelli/backend/internal/integration/persistence/model"
	"github.com/docuintelli/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Infrastructure
	cfg         *config.Config
	db          *mock.Db
	redisClient *redis.Client

	// Seeding
	userRepo         adapter.UserRepository
	accountRepo      adapter.AccountRepository
	transactionRepo  adapter.TransactionRepository
	notificationRepo adapter.NotificationRepository
	documentRepo     adapter.DocumentRepository
	tokenService     adapter.TokenService

	// Name registries for path/body placeholders
	users         map[string]*entity.User
	accounts      map[string]*entity.Account
	notifications map[string]*entity.Notification
	aliases       map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		_ = os.Setenv("ENV", "test")
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		dbMock := mock.NewDb([]any{
			&model.UserModel{},
			&model.AccountModel{},
			&model.TransactionModel{},
			&model.GoalModel{},
			&model.GoalAccountLinkModel{},
			&model.ManualActivityModel{},
			&model.NotificationModel{},
			&model.DocumentModel{},
		})
		if err := dbMock.Reset(); err != nil {
			return ctx, err
		}

		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, err
		}

		cfg := config.Load()
		injector := dependency.NewInjector(cfg, dbMock.DbConn, redisClient, func() bool { return true })

		tc := &TestContext{
			requestHeaders:   make(map[string]string),
			cfg:              cfg,
			db:               dbMock,
			redisClient:      redisClient,
			userRepo:         persistence.NewUserRepository(dbMock.DbConn),
			accountRepo:      persistence.NewAccountRepository(dbMock.DbConn),
			transactionRepo:  persistence.NewTransactionRepository(dbMock.DbConn),
			notificationRepo: persistence.NewNotificationRepository(dbMock.DbConn),
			documentRepo:     persistence.NewDocumentRepository(dbMock.DbConn),
			tokenService:     adapters.NewTokenService(cfg.JWT.Secret),
			users:            make(map[string]*entity.User),
			accounts:         make(map[string]*entity.Account),
			notifications:    make(map[string]*entity.Notification),
			aliases:          make(map[string]string),
		}

		tc.engine = injector.Router.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerSeedSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}
