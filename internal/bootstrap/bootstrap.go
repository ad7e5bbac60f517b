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
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/schoolhub/internal/app/controllers"
	appMigrations "github.com/yigit/schoolhub/internal/app/migrations"
	appRepos "github.com/yigit/schoolhub/internal/app/repositories"
	appRoutes "github.com/yigit/schoolhub/internal/app/routes"
	appServices "github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/config"
	"github.com/yigit/schoolhub/internal/db"
	appMiddleware "github.com/yigit/schoolhub/internal/middleware"
	pkgAuth "github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/helpers"
	"github.com/yigit/schoolhub/internal/pkg/logger"
	"github.com/yigit/schoolhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	SessionService       appServices.SessionService
	ClassService         appServices.ClassService
	RoomService          appServices.RoomService
	TeacherService       appServices.TeacherService
	StudentService       appServices.StudentService
	AttendanceService    appServices.AttendanceService
	ActivityService      appServices.ActivityService
	AuthController       *appControllers.AuthController
	SessionController    *appControllers.SessionController
	ClassController      *appControllers.ClassController
	RoomController       *appControllers.RoomController
	TeacherController    *appControllers.TeacherController
	StudentController    *appControllers.StudentController
	AttendanceController *appControllers.AttendanceController
	ActivityController   *appControllers.ActivityController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	// Services
	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.SessionService = appServices.NewSessionService(deps.Repos, database)
	deps.ClassService = appServices.NewClassService(deps.Repos, database)
	deps.RoomService = appServices.NewRoomService(deps.Repos.RoomRepository)
	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos)
	deps.ActivityService = appServices.NewActivityService(deps.Repos.ActivityLogRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	// Controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.SessionController = appControllers.NewSessionController(deps.SessionService)
	deps.ClassController = appControllers.NewClassController(deps.ClassService)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.ActivityController = appControllers.NewActivityController(deps.ActivityService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.SessionController,
		deps.ClassController,
		deps.RoomController,
		deps.TeacherController,
		deps.StudentController,
		deps.AttendanceController,
		deps.ActivityController,
		deps.AuthMiddleware,
	)

	return router
}
