package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ucad-dsi/gestion-budget/internal"
	"github.com/ucad-dsi/gestion-budget/internal/analysis"
	analysisRepo "github.com/ucad-dsi/gestion-budget/internal/analysis/postgres"
	"github.com/ucad-dsi/gestion-budget/internal/auth"
	authRepo "github.com/ucad-dsi/gestion-budget/internal/auth/postgres"
	"github.com/ucad-dsi/gestion-budget/internal/budget"
	budgetRepo "github.com/ucad-dsi/gestion-budget/internal/budget/postgres"
	"github.com/ucad-dsi/gestion-budget/internal/category"
	categoryRepo "github.com/ucad-dsi/gestion-budget/internal/category/postgres"
	"github.com/ucad-dsi/gestion-budget/internal/history"
	historyRepo "github.com/ucad-dsi/gestion-budget/internal/history/postgres"
	"github.com/ucad-dsi/gestion-budget/internal/report"
	reportRepo "github.com/ucad-dsi/gestion-budget/internal/report/postgres"
	"github.com/ucad-dsi/gestion-budget/internal/transport/rest"
	"github.com/ucad-dsi/gestion-budget/internal/user"
	userRepo "github.com/ucad-dsi/gestion-budget/internal/user/postgres"
	"github.com/ucad-dsi/gestion-budget/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Env)
	lg := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	// Services
	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenTTL,
		config.Security.RefreshTokenTTL,
	)
	authService := auth.NewService(authRepo.NewRepository(gormDB), tokenGen, config.Security.BCryptCost, lg)

	categoryService := category.NewService(categoryRepo.NewCategoryRepository(gormDB), lg)
	if err := categoryService.EnsureSeeded(); err != nil {
		return nil, fmt.Errorf("failed to seed budget categories: %w", err)
	}

	historyService := history.NewService(historyRepo.NewHistoryRepository(gormDB), lg)

	budgetService := budget.NewService(
		budgetRepo.NewBudgetRepository(gormDB),
		categoryService,
		historyService,
		budget.YearRange{Min: config.Budget.MinYear, Max: config.Budget.MaxYear},
		lg,
	)

	analysisService := analysis.NewService(analysisRepo.NewAnalysisRepository(gormDB), lg)

	userService := user.NewService(userRepo.NewUserRepository(gormDB), config.Security.BCryptCost, lg)

	reportService := report.NewService(
		reportRepo.NewReportRepository(gormDB),
		analysisService,
		config.Reports.Dir,
		lg,
	)

	// Handlers and routes
	router := chi.NewRouter()
	rest.RegisterAllRoutes(
		router,
		db.DB,
		auth.NewHandler(authService),
		category.NewHandler(categoryService),
		budget.NewHandler(budgetService),
		analysis.NewHandler(analysisService),
		report.NewHandler(reportService),
		user.NewHandler(userService),
		lg,
	)

	return &Dependencies{
		Config: config,
		DB:     db,
		Router: router,
		Logger: lg,
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
