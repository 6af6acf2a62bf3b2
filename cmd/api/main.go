package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/saulo-duarte/quiz-lambda/internal/container"
	"github.com/saulo-duarte/quiz-lambda/internal/router"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := container.New(ctx)
	defer c.Close()

	srv := &http.Server{
		Addr: ":" + c.Config.Port,
		Handler: router.New(router.RouterConfig{
			Env:             c.Config.Env,
			QuizHandler:     c.QuizContainer.Handler,
			QuizPlayHandler: c.QuizContainer.PlayHandler,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Logger.Infof("Server running on port %s (%s)", c.Config.Port, c.Config.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	config.Logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("Graceful shutdown failed")
	}
}
