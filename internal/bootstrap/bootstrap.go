package bootstrap

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/unicrud/internal/app/controllers"
	appRepos "github.com/yigit/unicrud/internal/app/repositories"
	appRoutes "github.com/yigit/unicrud/internal/app/routes"
	appServices "github.com/yigit/unicrud/internal/app/services"
	"github.com/yigit/unicrud/internal/config"
	appMiddleware "github.com/yigit/unicrud/internal/middleware"
	"github.com/yigit/unicrud/internal/pkg/logger"
	"github.com/yigit/unicrud/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService     appServices.CourseService  // Interface type
	StudentService    appServices.StudentService // Interface type
	CourseController  *appControllers.CourseController
	StudentController *appControllers.StudentController
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.Logging.Format == "text",
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes application repositories, services and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = seed.CreateDefaultData(cfg.Seed.Enabled, lgr)

	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)

	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch {
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case cfg.Server.Mode == "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID(lgr))
	router.Use(appMiddleware.RequestLogger())

	if cfg.RateLimit.Enabled {
		router.Use(appMiddleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		lgr.Info().Float64("rps", cfg.RateLimit.RPS).Int("burst", cfg.RateLimit.Burst).Msg("Rate limiting enabled")
	}

	if cfg.Swagger.Enabled {
		appRoutes.SetupSwagger(router)
	}

	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.StudentController,
		deps.CourseService,
		deps.StudentService,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
