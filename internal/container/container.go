package container

import (
	"context"

	"github.com/saulo-duarte/quiz-lambda/internal/cache"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/saulo-duarte/quiz-lambda/internal/events"
	"github.com/saulo-duarte/quiz-lambda/internal/quiz"
)

type Container struct {
	Config        *config.Config
	QuizContainer *quiz.QuizContainer
	Publisher     events.Publisher
}

func New(ctx context.Context) *Container {
	cfg, err := config.Load()
	if err != nil {
		config.Logger.Fatalf("failed to load config: %v", err)
	}
	config.Init(cfg.Env, cfg.LogLevel)
	log := config.WithContext(ctx)

	if err := config.Connect(ctx, cfg.DatabaseDSN, cfg.Database); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := quiz.AutoMigrate(config.DB); err != nil {
		log.Fatalf("failed to migrate quiz schema: %v", err)
	}

	store := cache.NewNoop()
	if cfg.Redis.Addr != "" {
		redisStore, err := cache.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, play cache disabled")
		} else {
			store = redisStore
		}
	}

	publisher := events.NewNoop()
	if cfg.AMQP.URL != "" {
		amqpPublisher, err := events.NewAMQP(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.WithError(err).Warn("RabbitMQ unavailable, event publishing disabled")
		} else {
			publisher = amqpPublisher
		}
	}

	quizContainer := quiz.NewQuizContainer(config.DB, store, cfg.Cache.PlayTTL, publisher)

	return &Container{
		Config:        cfg,
		QuizContainer: quizContainer,
		Publisher:     publisher,
	}
}

func (c *Container) Close() {
	if err := c.Publisher.Close(); err != nil {
		config.Logger.WithError(err).Warn("Failed to close event publisher")
	}
}
