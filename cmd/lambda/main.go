package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"

	"github.com/saulo-duarte/quiz-lambda/internal/container"
	"github.com/saulo-duarte/quiz-lambda/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New(context.Background())

	handler := router.New(router.RouterConfig{
		Env:             c.Config.Env,
		QuizHandler:     c.QuizContainer.Handler,
		QuizPlayHandler: c.QuizContainer.PlayHandler,
	})

	adapter := httpadapter.New(handler)
	lambda.Start(adapter.ProxyWithContext)
}
