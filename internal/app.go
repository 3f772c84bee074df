package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"prestamos-api/config"
	"prestamos-api/internal/application/ports"
	"prestamos-api/internal/application/services"
	"prestamos-api/internal/infrastructure/cache"
	"prestamos-api/internal/infrastructure/db/postgres"
	auditoriaDB "prestamos-api/internal/infrastructure/db/postgres/auditoria"
	catalogoDB "prestamos-api/internal/infrastructure/db/postgres/catalogo"
	solicitudDB "prestamos-api/internal/infrastructure/db/postgres/solicitud"
	userDB "prestamos-api/internal/infrastructure/db/postgres/user"
	"prestamos-api/internal/infrastructure/googleauth"
	"prestamos-api/internal/infrastructure/jwt"
	"prestamos-api/internal/infrastructure/metrics"
	"prestamos-api/internal/infrastructure/mq"
	"prestamos-api/internal/interface/api/rest"
	"prestamos-api/internal/interface/api/rest/middleware"
	"prestamos-api/pkg/rmqconsumer"
)

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	redis      *goredis.Client
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
}

func NewApp(ctx context.Context) (*App, error) {
	// logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	// config
	if err = godotenv.Load(".env"); err != nil {
		logger.Fatal("error loading .env file", zap.Error(err))
	}
	cfg := config.Load()

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err = postgres.Migrate(ctx, dbDsn); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// redis (optional)
	redisClient, err := cache.New(ctx, logger, cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		logger.Fatal("RabbitMQ config error", zap.Error(err))
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		logger.Fatal("failed to connect to rabbitMQ", zap.Error(err))
	}
	if err = rbMQ.Init(); err != nil {
		logger.Fatal("failed init rabbitMQ", zap.Error(err))
	}
	//rmqConsumer
	rmqConsumer := rmqconsumer.New(cfg.MQ, logger, rbMQ.GetConn())
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		logger.Fatal("failed to connect rabbitMQ consumer", zap.Error(err))
	}
	if err = rmqConsumer.Init(); err != nil {
		logger.Fatal("failed to init rabbitMQ consumer", zap.Error(err))
	}

	return &App{
		logger:     logger,
		cfg:        cfg,
		db:         dbPool,
		redis:      redisClient,
		httpSrv:    httpSrv,
		router:     r,
		mCounter:   mCounter,
		mq:         rbMQ,
		mqConsumer: rmqConsumer,
	}, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.mq.GetConn() != nil {
		a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.cfg.App.Host+":"+a.cfg.App.Port))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		a.mq.PublisherWorker(ctx)
		return nil
	})

	g.Go(func() error {
		a.mqConsumer.DeliveryWorker(ctx)
		return nil
	})

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	userRepo := userDB.NewRepository(a.db)
	solicitudRepo := solicitudDB.NewRepository(a.db)
	catalogoRepo := catalogoDB.NewRepository(a.db)
	auditRecorder := auditoriaDB.NewRecorder()

	// services
	jwtService := jwt.New(
		a.cfg.App.JWTSecret,
		a.cfg.App.JWTAlg,
		time.Duration(a.cfg.App.TokenTTLMins)*time.Minute,
	)
	verifier := googleauth.New(a.cfg.Auth.GoogleClientID, a.cfg.Auth.AllowedEmailDomain)
	authService := services.NewAuthService(
		a.cfg.Auth, a.db, userRepo, auditRecorder, jwtService, verifier, a.mq, a.mCounter,
	)
	usuarioService := services.NewUsuarioService(a.db, userRepo, auditRecorder, a.mq, a.mCounter)
	solicitudService := services.NewSolicitudService(
		a.db, solicitudRepo, catalogoRepo, userRepo, auditRecorder, a.mq, a.mCounter,
	)
	catalogoService := services.NewCatalogoService(catalogoRepo)

	// middleware
	authMW := middleware.AuthMiddleware(jwtService, userRepo)
	cacheMW := middleware.ResponseCache(a.redis, 5*time.Minute)

	// controllers
	rest.NewAuthController(a.router, a.logger, authService, authMW)
	rest.NewUsuarioController(a.router, usuarioService, a.logger, authMW)
	rest.NewSolicitudController(a.router, solicitudService, a.logger, authMW)
	rest.NewSolicitudCompletaController(a.router, solicitudService, a.logger, authMW)
	rest.NewCatalogoController(a.router, catalogoService, a.logger, cacheMW)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) {
		if err := a.db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unreachable"})
			return
		}
		c.Status(http.StatusOK)
	})
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
