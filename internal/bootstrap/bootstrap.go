package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mattwebdev/devcamper/docs" // generated swagger docs
	appControllers "github.com/mattwebdev/devcamper/internal/app/controllers"
	appMigrations "github.com/mattwebdev/devcamper/internal/app/migrations"
	appRepos "github.com/mattwebdev/devcamper/internal/app/repositories"
	appRoutes "github.com/mattwebdev/devcamper/internal/app/routes"
	appServices "github.com/mattwebdev/devcamper/internal/app/services"
	"github.com/mattwebdev/devcamper/internal/config"
	"github.com/mattwebdev/devcamper/internal/db"
	appMiddleware "github.com/mattwebdev/devcamper/internal/middleware"
	pkgAuth "github.com/mattwebdev/devcamper/internal/pkg/auth"
	"github.com/mattwebdev/devcamper/internal/pkg/filestorage"
	"github.com/mattwebdev/devcamper/internal/pkg/geocoder"
	"github.com/mattwebdev/devcamper/internal/pkg/logger"
	"github.com/mattwebdev/devcamper/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	BootcampService    appServices.BootcampService
	CourseService      appServices.CourseService
	AuthController     *appControllers.AuthController
	BootcampController *appControllers.BootcampController
	CourseController   *appControllers.CourseController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	FileStorage        *filestorage.LocalStorage
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
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

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// provisions default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection established")

	migrator := appMigrations.NewMigrator(database)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Upload.Path)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	tokenExp, err := time.ParseDuration(cfg.JWT.TokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid token expiration: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.JWT.Issuer,
	})

	geo := geocoder.NewHTTPGeocoder(geocoder.Config{
		BaseURL: cfg.Geocoder.BaseURL,
		APIKey:  cfg.Geocoder.APIKey,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.Users, deps.JWTService, lgr)
	deps.BootcampService = appServices.NewBootcampService(
		deps.Repos.Bootcamps,
		deps.Repos.Courses,
		geo,
		deps.FileStorage,
		cfg.Upload.MaxSizeByte,
		lgr,
	)
	deps.CourseService = appServices.NewCourseService(deps.Repos.Courses, deps.Repos.Bootcamps, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	cookieMaxAge := int(cfg.CookieExpiry().Seconds())
	cookieSecure := strings.ToLower(cfg.Server.Mode) == "production"
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, cookieMaxAge, cookieSecure)
	deps.BootcampController = appControllers.NewBootcampController(deps.BootcampService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.BootcampController,
		deps.CourseController,
		deps.AuthMiddleware,
	)

	return router
}
