package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/nullpointers/attendance-backend/internal/app/controllers"
	appMigrations "github.com/nullpointers/attendance-backend/internal/app/migrations"
	appRepos "github.com/nullpointers/attendance-backend/internal/app/repositories"
	appRoutes "github.com/nullpointers/attendance-backend/internal/app/routes"
	appServices "github.com/nullpointers/attendance-backend/internal/app/services"
	"github.com/nullpointers/attendance-backend/internal/config"
	"github.com/nullpointers/attendance-backend/internal/db"
	appMiddleware "github.com/nullpointers/attendance-backend/internal/middleware"
	pkgAuth "github.com/nullpointers/attendance-backend/internal/pkg/auth"
	"github.com/nullpointers/attendance-backend/internal/pkg/helpers"
	"github.com/nullpointers/attendance-backend/internal/pkg/logger"
	"github.com/nullpointers/attendance-backend/internal/seed"
	"github.com/nullpointers/attendance-backend/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	DenyList          *pkgAuth.TokenDenyList
	AuthService       *appServices.AuthService
	AttendanceService *appServices.AttendanceService
	AdminService      *appServices.AdminService
	ClassroomService  *appServices.ClassroomService
	AuthController    *appControllers.AuthController
	AdminController   *appControllers.AdminController
	FacultyController *appControllers.FacultyController
	StudentController *appControllers.StudentController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Logger            zerolog.Logger
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
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := seed.CreateDefaultAdmin(ctx, database.Pool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, redisStore *store.Redis, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
	deps.DenyList = pkgAuth.NewTokenDenyList(redisStore.Client)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, deps.DenyList, lgr)
	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.ClassroomRepository,
		deps.Repos.StudentRepository,
		deps.Repos.AttendanceRepository,
		lgr,
	)
	deps.AdminService = appServices.NewAdminService(
		database,
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.FacultyRepository,
		lgr,
	)
	deps.ClassroomService = appServices.NewClassroomService(
		deps.Repos.ClassroomRepository,
		deps.Repos.StudentRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.DenyList, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, deps.ClassroomService, lgr)
	deps.FacultyController = appControllers.NewFacultyController(deps.AttendanceService, deps.ClassroomService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.AttendanceService, lgr)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, database *db.PostgresDB, redisStore *store.Redis, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS())
	router.Use(appMiddleware.SecurityHeaders())
	router.Use(appMiddleware.NewTokenBucket(cfg.RateLimit.Burst, cfg.RateLimit.RequestsPerMinute).GinMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/healthz", func(c *gin.Context) {
		ctx := c.Request.Context()
		dbHealthy := database.Ping(ctx) == nil
		redisHealthy := redisStore.Healthy(ctx)
		status := http.StatusOK
		if !dbHealthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"db": dbHealthy, "redis": redisHealthy})
	})

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.FacultyController,
		deps.StudentController,
		deps.AuthMiddleware,
	)

	return router
}
