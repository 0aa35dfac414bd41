package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"phone_addiction_backend/internal/config"
	"phone_addiction_backend/internal/controller"
	"phone_addiction_backend/internal/repository"
	"phone_addiction_backend/internal/service"
	"phone_addiction_backend/pkg/configwatcher"
	"phone_addiction_backend/pkg/database"
	"phone_addiction_backend/pkg/logger"
	"phone_addiction_backend/pkg/monitoring"
	"phone_addiction_backend/pkg/security"
	"phone_addiction_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// App 在进程启动时构造一次，持有配置、存储句柄以及注入到各 handler 的服务
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracer          *sdktrace.TracerProvider
	limiter         *security.Limiter
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user *repository.UserRepository
	log  *repository.LogRepository
}

type services struct {
	auth       *service.AuthService
	assessment *service.AssessmentService
	tokens     service.TokenStore
}

type controllers struct {
	auth       *controller.AuthController
	assessment *controller.AssessmentController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user: repository.NewUserRepository(db),
		log:  repository.NewLogRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.assessment = service.NewAssessmentService(repos.log, service.DefaultScorer())

	if rdb != nil {
		s.tokens = service.NewRedisTokenStore(rdb)
	} else {
		s.tokens = service.NewMemoryTokenStore()
	}

	return s
}

func (a *App) initControllers(s *services, cfg *config.Config, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.tokens, cfg),
		assessment: controller.NewAssessmentController(s.assessment),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}
	router.Use(monitoring.MetricsMiddleware())
	router.Use(security.Secure())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
}

// build 组装依赖，db 与 rdb 由调用方打开（rdb 可为 nil）
func build(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		limiter: security.NewLimiter(
			cfg.RateLimit.MaxRequests,
			time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
		),
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, cfg, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, services, cfg)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetMode(newCfg.Server.Mode)
		logger.Log.Info("Log level updated", zap.Stringer("level", logger.Level()))
	})

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	}

	app := build(cfg, db, rdb)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

func (a *App) Run() {
	defer logger.Log.Sync()

	srv := &http.Server{
		Addr:              a.Config.Server.Addr(),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 等待中断信号优雅地关闭服务器
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Info("Server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		a.limiter.Cleanup()
		return nil
	})

	if a.Config.ConfigFile != "" {
		g.Go(func() error {
			return configwatcher.WatchConfig(gctx, a.Config.ConfigFile, func(newCfg *config.Config) {
				for _, cb := range a.configCallbacks {
					cb(newCfg)
				}
			})
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutting down server...")
		a.limiter.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if a.tracer != nil {
			if err := a.tracer.Shutdown(shutdownCtx); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}
		if a.Redis != nil {
			a.Redis.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Log.Fatal("Server stopped with error", zap.Error(err))
	}
	logger.Log.Info("Server exiting")
}
