package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yun0-0514/dev-blog/adapters/event"
	httpAdapter "github.com/yun0-0514/dev-blog/adapters/http"
	"github.com/yun0-0514/dev-blog/adapters/persistence"
	"github.com/yun0-0514/dev-blog/internal/application/service"
	aboutUC "github.com/yun0-0514/dev-blog/internal/application/usecase/about"
	authUC "github.com/yun0-0514/dev-blog/internal/application/usecase/auth"
	categoryUC "github.com/yun0-0514/dev-blog/internal/application/usecase/category"
	postUC "github.com/yun0-0514/dev-blog/internal/application/usecase/post"
	"github.com/yun0-0514/dev-blog/internal/config"
	"github.com/yun0-0514/dev-blog/pkg/auth"
	"github.com/yun0-0514/dev-blog/pkg/logger"
	"github.com/yun0-0514/dev-blog/pkg/tracing"
)

const serviceName = "dev-blog-api"

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("FATAL: cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	appLogger.Info("Start Dev Blog API Server...", zap.String("env", cfg.App.Env))

	tp, err := tracing.NewTracerProvider(cfg, appLogger, serviceName)
	if err != nil {
		appLogger.Fatal("cannot init tracer provider", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			appLogger.Error("Error shutting down tracer provider", err)
		}
	}()

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Cache and events are optional; the about page works without them.
	var profileCache service.ProfileCache
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		profileCache = persistence.NewRedisAboutCache(redisClient, cfg.Cache.ProfileTTL, appLogger)
	} else {
		appLogger.Warn("REDIS_ADDR not set, about profile cache disabled")
	}

	var profileEvents service.ProfileEventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		profileEvents = kafkaClient
	} else {
		appLogger.Warn("KAFKA_BROKERS not set, about events disabled")
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	aboutRepo := persistence.NewPostgresAboutRepo(dbPool, appLogger)
	postRepo := persistence.NewPostgresPostRepo(dbPool, appLogger)
	categoryRepo := persistence.NewPostgresCategoryRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// Use Cases
	aboutUseCase := aboutUC.NewAboutUseCase(aboutRepo, profileCache, profileEvents, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	currentUserUseCase := authUC.NewCurrentUserUseCase(userRepo, appLogger)
	listLatestPostsUseCase := postUC.NewListLatestPostsUseCase(postRepo)
	listCategoriesUseCase := categoryUC.NewListCategoriesUseCase(categoryRepo)
	rssUseCase := postUC.NewRSSUseCase(postRepo, postUC.FeedInfo{
		SiteURL: cfg.Site.URL,
		Title:   cfg.Site.Title,
		Author:  cfg.Site.Author,
	}, appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ServiceName:    serviceName,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		JWTService:     jwtSvc,
		Logger:         appLogger,
		AboutHandler:   httpAdapter.NewAboutHandler(aboutUseCase, appLogger),
		AuthHandler:    httpAdapter.NewAuthHandler(loginUseCase, currentUserUseCase, appLogger),
		PostHandler:    httpAdapter.NewPostHandler(listLatestPostsUseCase, listCategoriesUseCase, appLogger),
		RSSHandler:     httpAdapter.NewRSSHandler(rssUseCase, appLogger),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
