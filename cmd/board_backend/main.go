package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/services"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/handlers"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/middleware"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/platform/config"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/platform/realtime"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/repositories/database/pgsql"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/utils"
	"github.com/afsarfurkan25-ux/exchange-board-backend/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	if err := ensureAdminAccount(context.Background(), repos, logger); err != nil {
		logger.Error("Failed to bootstrap admin account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	liveRates := services.NewLiveRatesService(cfg, logger)
	serviceContainer := services.NewServiceContainer(cfg, repos, liveRates)

	feed := realtime.NewListener(dbPool, logger)
	hub := realtime.NewHub()

	// Background goroutines share one cancellable context tied to SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go feed.Run(middleware.WithLogger(ctx, logger))
	go liveRates.Run(ctx)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, feed, hub)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	hub.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Database migrations applied successfully")
	}
	return nil
}

// ensureAdminAccount seeds the first admin when the members table is empty,
// so a fresh deployment has a way in. The default password must be changed
// from the panel afterwards.
func ensureAdminAccount(ctx context.Context, repos portsrepo.RepositoryProvider, logger *slog.Logger) error {
	members, err := repos.MemberRepo.ListMembers(ctx)
	if err != nil {
		return err
	}
	if len(members) > 0 {
		return nil
	}

	hash, err := utils.HashPassword("admin")
	if err != nil {
		return err
	}

	admin := domain.Member{
		MemberID:     uuid.NewString(),
		Name:         "Admin",
		Username:     "admin",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Status:       domain.StatusActive,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repos.MemberRepo.UpsertMembers(ctx, []domain.Member{admin}); err != nil {
		return err
	}

	logger.Warn("Seeded default admin account; change its password", slog.String("username", admin.Username))
	return nil
}
