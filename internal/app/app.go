package app

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"uni_advisor_backend/internal/config"
	"uni_advisor_backend/internal/controller"
	"uni_advisor_backend/internal/middleware"
	"uni_advisor_backend/internal/repository"
	"uni_advisor_backend/internal/service"
	"uni_advisor_backend/pkg/logger"
	"uni_advisor_backend/pkg/monitoring"
	"uni_advisor_backend/pkg/security"
	"uni_advisor_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	services *services
	tracer   *sdktrace.TracerProvider
}

type repositories struct {
	catalog    *repository.CatalogRepository
	enrollment *repository.EnrollmentRepository
}

type services struct {
	storage        *service.StorageService
	recommendation *service.RecommendationService
	catalog        *service.CatalogService
	insight        *service.InsightService
}

type controllers struct {
	recommendation *controller.RecommendationController
	catalog        *controller.CatalogController
	insight        *controller.InsightController
	health         *controller.HealthController
}

// loadRepositories fetches and parses both datasets through the configured
// storage provider. Any schema or parse error aborts startup: the engine
// never serves from a partial catalog.
func (a *App) loadRepositories(storage *service.StorageService, cfg *config.Config) (*repositories, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	catalog, err := loadDataset(ctx, storage, cfg.Datasets.CatalogFile, func(r io.Reader) (*repository.CatalogRepository, error) {
		return repository.LoadCatalog(r, cfg.Datasets.Encoding)
	})
	if err != nil {
		return nil, err
	}

	enrollment, err := loadDataset(ctx, storage, cfg.Datasets.EnrollmentFile, func(r io.Reader) (*repository.EnrollmentRepository, error) {
		return repository.LoadEnrollment(r, cfg.Datasets.Encoding)
	})
	if err != nil {
		return nil, err
	}

	monitoring.DatasetRows.WithLabelValues("catalog").Set(float64(catalog.Len()))
	monitoring.DatasetRows.WithLabelValues("enrollment").Set(float64(enrollment.Len()))

	return &repositories{catalog: catalog, enrollment: enrollment}, nil
}

func loadDataset[T any](ctx context.Context, storage *service.StorageService, name string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	rc, err := storage.Open(ctx, name)
	if err != nil {
		return zero, err
	}
	defer rc.Close()
	return parse(rc)
}

func (a *App) initServices(repos *repositories, cfg *config.Config, storage *service.StorageService) *services {
	return &services{
		storage:        storage,
		recommendation: service.NewRecommendationService(repos.catalog, service.RankingOptionsFromConfig(&cfg.Recommendation)),
		catalog:        service.NewCatalogService(repos.catalog),
		insight:        service.NewInsightService(repos.enrollment),
	}
}

func (a *App) initControllers(s *services, repos *repositories) *controllers {
	return &controllers{
		recommendation: controller.NewRecommendationController(s.recommendation),
		catalog:        controller.NewCatalogController(s.catalog),
		insight:        controller.NewInsightController(s.insight),
		health:         controller.NewHealthController(repos.catalog, repos.enrollment),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ApplyConfig is the config-reload callback. Only ranking options are
// runtime-tunable; datasets and listeners keep their startup state.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.services.recommendation.SetOptions(service.RankingOptionsFromConfig(&cfg.Recommendation))
	logger.Log.Info("Ranking options reloaded",
		zap.String("defaultMode", cfg.Recommendation.DefaultMode),
		zap.Bool("caseInsensitive", cfg.Recommendation.CaseInsensitive),
		zap.String("tieBreak", cfg.Recommendation.TieBreak))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	monitoring.Init()

	app := &App{Config: cfg}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	repos, err := app.loadRepositories(storage, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to load datasets", zap.Error(err))
	}
	logger.Log.Info("Datasets loaded",
		zap.Int("catalogRows", repos.catalog.Len()),
		zap.Int("enrollmentRows", repos.enrollment.Len()))

	services := app.initServices(repos, cfg, storage)
	app.services = services
	controllers := app.initControllers(services, repos)

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("uni-advisor", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.registerRoutes(router, controllers)

	return app
}

func ginMode(mode string) string {
	if mode == "release" {
		return gin.ReleaseMode
	}
	return gin.DebugMode
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
