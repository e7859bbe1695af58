package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/placementportal/internal/app/controllers"
	appMigrations "github.com/yigit/placementportal/internal/app/migrations"
	appRepos "github.com/yigit/placementportal/internal/app/repositories"
	appRoutes "github.com/yigit/placementportal/internal/app/routes"
	appServices "github.com/yigit/placementportal/internal/app/services"
	"github.com/yigit/placementportal/internal/config"
	"github.com/yigit/placementportal/internal/db"
	appMiddleware "github.com/yigit/placementportal/internal/middleware"
	pkgAuth "github.com/yigit/placementportal/internal/pkg/auth"
	"github.com/yigit/placementportal/internal/pkg/filestorage"
	"github.com/yigit/placementportal/internal/pkg/helpers"
	"github.com/yigit/placementportal/internal/pkg/logger"
	"github.com/yigit/placementportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.IAuthService
	PlacementService    appServices.IPlacementService
	CompanyVisitService appServices.ICompanyVisitService
	SuperAdminService   appServices.ISuperAdminService

	Controllers    *appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	AuthLimiter    *appMiddleware.RateLimiter
	Metrics        *appMiddleware.Metrics

	Repos       *appRepos.Repositories
	JWTService  *pkgAuth.JWTService
	FileStorage *filestorage.LocalStorage
	Logger      zerolog.Logger
}

// ConfigPath returns the YAML config location, overridable with CONFIG_PATH
func ConfigPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return filepath.Join("configs", "config.yaml")
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(ConfigPath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL, applies pending migrations and seeds the bootstrap superadmin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	ctx := context.Background()

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); err != nil {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	seedCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	superAdmin := seed.SuperAdmin{
		Email:      cfg.Seed.SuperAdminEmail,
		Password:   cfg.Seed.SuperAdminPassword,
		Name:       cfg.Seed.SuperAdminName,
		RollNumber: cfg.Seed.SuperAdminRoll,
	}
	if _, err := seed.EnsureSuperAdmin(seedCtx, appRepos.NewUserRepository(database.Pool), superAdmin, lgr); err != nil {
		// Startup continues; the superadmin can still be registered with the secret code
		lgr.Error().Err(err).Msg("Failed to create bootstrap superadmin, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	baseURL := cfg.Server.PublicBaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	var err error
	// The URL prefix must match the static /uploads route
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, strings.TrimRight(baseURL, "/")+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, pkgAuth.DefaultSessionTTL),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.JWTService,
		appServices.RegistrationSecrets{
			AdminSecret:      cfg.Registration.AdminSecret,
			SuperAdminSecret: cfg.Registration.SuperAdminSecret,
		},
		logger.Component("auth"),
	)
	deps.PlacementService = appServices.NewPlacementService(
		deps.Repos.PlacementRepository,
		deps.FileStorage,
		logger.Component("placements"),
	)
	deps.CompanyVisitService = appServices.NewCompanyVisitService(
		deps.Repos.CompanyVisitRepository,
		logger.Component("company_visits"),
	)
	deps.SuperAdminService = appServices.NewSuperAdminService(
		deps.Repos.UserRepository,
		deps.Repos.PlacementRepository,
		deps.FileStorage,
		logger.Component("superadmin"),
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthService)
	deps.AuthLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.AuthPerSecond, cfg.RateLimit.AuthBurst)
	deps.Metrics = appMiddleware.NewMetrics()

	deps.Controllers = &appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(deps.AuthService, lgr),
		Placement:    appControllers.NewPlacementController(deps.PlacementService, lgr),
		Admin:        appControllers.NewAdminController(deps.PlacementService, lgr),
		CompanyVisit: appControllers.NewCompanyVisitController(deps.CompanyVisitService, lgr),
		SuperAdmin:   appControllers.NewSuperAdminController(deps.SuperAdminService, lgr),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, database appRoutes.Pinger, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes()
	router.Use(
		deps.Metrics.Instrument(),
		appMiddleware.Recovery(),
		appMiddleware.RequestLogger(logger.Component("http")),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupHealth(router, database)
	router.GET("/metrics", deps.Metrics.Handler())

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, appRoutes.Options{
		AuthLimiter: deps.AuthLimiter,
		// Two documents plus the form fields
		MaxUploadBytes: 2*cfg.MaxUploadBytes() + 1<<20,
	})

	return router, nil
}
