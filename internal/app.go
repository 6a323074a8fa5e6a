// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "fintrack-api/internal/api"
	"fintrack-api/internal/api/handler"
	apimw "fintrack-api/internal/api/middleware"
	"fintrack-api/internal/config"
	"fintrack-api/internal/metrics"
	"fintrack-api/internal/repository"
	"fintrack-api/internal/repository/postgres"
	"fintrack-api/internal/service"
	"fintrack-api/internal/util"
	"fintrack-api/pkg/db"
	"fintrack-api/pkg/token"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository        repository.UserRepository
	PlatformRepository    repository.PlatformRepository
	AccountRepository     repository.AccountRepository
	TransactionRepository repository.TransactionRepository
	GoalRepository        repository.GoalRepository
	MetricRepository      repository.MetricRepository

	// Services
	AuthService        service.AuthService
	AccountService     service.AccountService
	TransactionService service.TransactionService
	GoalService        service.GoalService
	AnalyticsService   service.AnalyticsService
	AdviceService      service.AdviceService
	StatementService   service.StatementService

	// Observability
	Collector *metrics.Collector

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.PlatformRepository = postgres.NewPlatformRepository(app.DB)
	app.AccountRepository = postgres.NewAccountRepository(app.DB)
	app.TransactionRepository = postgres.NewTransactionRepository(app.DB)
	app.GoalRepository = postgres.NewGoalRepository(app.DB)
	app.MetricRepository = postgres.NewMetricRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize observability and token management
	app.Collector = metrics.NewCollector()
	tokens := token.NewManager(app.Config.JWTSecret, app.Config.TokenTTL)

	// 6. Initialize Services
	app.AuthService = service.NewAuthService(app.DB, app.UserRepository, tokens)
	app.AccountService = service.NewAccountService(app.DB, app.AccountRepository, app.PlatformRepository)
	// Pass the concrete db.BeginTx, db.CommitTx, db.RollbackTx functions from pkg/db
	app.TransactionService = service.NewTransactionService(
		app.DB, // This is the DBTxBeginner
		app.DB, // This is the DBExecutor
		app.AccountRepository,
		app.TransactionRepository,
		app.Collector,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.GoalService = service.NewGoalService(app.DB, app.GoalRepository)
	app.AnalyticsService = service.NewAnalyticsService(
		app.DB,
		app.AccountRepository,
		app.TransactionRepository,
		app.GoalRepository,
		app.MetricRepository,
		app.Logger,
	)

	// The external text generator is optional; without it the advice
	// responder always uses the deterministic fallback.
	var generator service.TextGenerator
	if app.Config.AdviceServiceURL != "" {
		generator = service.NewHTTPTextGenerator(app.Config.AdviceServiceURL, app.Config.AdviceAPIKey, app.Config.AdviceTimeout)
		app.Logger.Info("External advice generator configured.", "url", app.Config.AdviceServiceURL)
	}
	app.AdviceService = service.NewAdviceService(app.AnalyticsService, generator, app.Logger)
	app.StatementService = service.NewStatementService(app.DB, app.UserRepository, app.TransactionRepository)
	app.Logger.Info("Services initialized.")

	// 7. Initialize HTTP Handlers and Router
	authenticator := apimw.NewAuthenticator(tokens, app.AuthService)
	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(app.AuthService, app.Logger),
		Platform:    handler.NewPlatformHandler(app.DB, app.PlatformRepository, app.Logger),
		Account:     handler.NewAccountHandler(app.AccountService, app.Logger),
		Transaction: handler.NewTransactionHandler(app.TransactionService, app.Logger),
		Goal:        handler.NewGoalHandler(app.GoalService, app.Logger),
		Analytics:   handler.NewAnalyticsHandler(app.AnalyticsService, app.Logger),
		Advice:      handler.NewAdviceHandler(app.AdviceService, app.Logger),
		Report:      handler.NewReportHandler(app.StatementService, app.Logger),
	}
	app.HTTPHandler = router.NewRouter(handlers, authenticator, app.Collector, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
