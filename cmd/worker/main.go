package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/yun0-0514/dev-blog/adapters/event"
	"github.com/yun0-0514/dev-blog/adapters/persistence"
	aboutUC "github.com/yun0-0514/dev-blog/internal/application/usecase/about"
	"github.com/yun0-0514/dev-blog/internal/config"
	"github.com/yun0-0514/dev-blog/pkg/logger"
	"github.com/yun0-0514/dev-blog/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("FATAL: cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env).With(zap.String("component", "worker"))
	defer appLogger.Sync()

	appLogger.Info("Starting Dev Blog Worker...")

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "dev-blog-worker")
	if err != nil {
		appLogger.Fatal("cannot init tracer provider", err)
	}
	defer tp.Shutdown(context.Background())

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("KAFKA_BROKERS is required for the worker", nil)
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	aboutRepo := persistence.NewPostgresAboutRepo(dbPool, appLogger)
	profileCache := persistence.NewRedisAboutCache(redisClient, cfg.Cache.ProfileTTL, appLogger)
	aboutUseCase := aboutUC.NewAboutUseCase(aboutRepo, profileCache, nil, appLogger)

	aboutConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    cfg.Kafka.AboutTopic,
		GroupID:  cfg.Kafka.ConsumerGroup,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})
	defer aboutConsumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Worker listening", zap.String("topic", cfg.Kafka.AboutTopic), zap.String("group", cfg.Kafka.ConsumerGroup))

	for {
		msg, err := aboutConsumer.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				appLogger.Info("Worker stopped")
				return
			}
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		evt, err := event.DecodeProfileEvent(msg)
		if err != nil {
			appLogger.Warn("Skipping malformed about event", zap.Int64("offset", msg.Offset), zap.Error(err))
			commitMessage(ctx, aboutConsumer, msg, appLogger)
			continue
		}

		appLogger.Info("Processing about event",
			zap.String("event_type", string(evt.EventType)),
			zap.String("profile_id", evt.ProfileID.String()),
		)

		if err := aboutUseCase.WarmCache(ctx); err != nil {
			appLogger.Error("Failed to warm about cache", err, zap.String("profile_id", evt.ProfileID.String()))
			continue
		}

		commitMessage(ctx, aboutConsumer, msg, appLogger)
	}
}

func commitMessage(ctx context.Context, consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(ctx, msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
