package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/unitutor/internal/app/controllers"
	appMigrations "github.com/yigit/unitutor/internal/app/migrations"
	appRepos "github.com/yigit/unitutor/internal/app/repositories"
	appRoutes "github.com/yigit/unitutor/internal/app/routes"
	appServices "github.com/yigit/unitutor/internal/app/services"
	"github.com/yigit/unitutor/internal/config"
	"github.com/yigit/unitutor/internal/db"
	appMiddleware "github.com/yigit/unitutor/internal/middleware"
	pkgAuth "github.com/yigit/unitutor/internal/pkg/auth"
	"github.com/yigit/unitutor/internal/pkg/logger"
	"github.com/yigit/unitutor/internal/pkg/metrics"
	"github.com/yigit/unitutor/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	SubjectService        appServices.SubjectService
	InstructionService    appServices.InstructionService
	AuthService           appServices.AuthService
	SubjectController     *appControllers.SubjectController
	InstructionController *appControllers.InstructionController
	AuthController        *appControllers.AuthController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	RateLimiter           *appMiddleware.RateLimiter // nil when rate limiting is disabled
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Registry              *prometheus.Registry
	Metrics               *metrics.Collector
	Health                appRoutes.HealthChecker
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	format := strings.ToLower(cfg.Logging.Format)

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: format == "pretty" || format == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds demo data when enabled.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool, logger.Component("migrator"))
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if cfg.Seed.Enabled {
		repos := appRepos.NewRepositories(dbPool)
		if err := seed.CreateDefaultData(ctx, repos.SubjectRepository, repos.UserRepository, logger.Component("seed")); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, health appRoutes.HealthChecker, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Repos:  repos,
		Health: health,
		Logger: lgr,
	}

	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = metrics.NewCollector(deps.Registry)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenDuration(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.SubjectService = appServices.NewSubjectService(
		repos.SubjectRepository,
		repos.UserRepository,
		deps.Metrics,
		logger.Component("subjects"),
	)
	deps.InstructionService = appServices.NewInstructionService(
		repos.InstructionSessionRepository,
		repos.UserRepository,
		deps.Metrics,
		logger.Component("instructions"),
	)
	deps.AuthService = appServices.NewAuthService(
		repos.UserRepository,
		deps.JWTService,
		logger.Component("auth"),
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	if cfg.RateLimit.Enabled {
		deps.RateLimiter = appMiddleware.NewRateLimiter(appMiddleware.RateLimiterConfig{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			Burst:             cfg.RateLimit.Burst,
		})
	}

	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.InstructionController = appControllers.NewInstructionController(deps.InstructionService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(logger.Component("http")),
		appMiddleware.Recovery(lgr),
		appMiddleware.Metrics(deps.Metrics),
	)
	if deps.RateLimiter != nil {
		router.Use(deps.RateLimiter.Middleware())
	}

	appRoutes.SetupSwagger(router)
	appRoutes.SetupMetrics(router, deps.Registry)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.SubjectController,
		deps.InstructionController,
		deps.AuthMiddleware,
		deps.Health,
	)

	return router
}
