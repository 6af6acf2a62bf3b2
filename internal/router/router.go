package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/quiz-lambda/internal/middlewares"
	"github.com/saulo-duarte/quiz-lambda/internal/quiz"
)

type RouterConfig struct {
	Env             string
	QuizHandler     *quiz.Handler
	QuizPlayHandler *quiz.PlayHandler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "API is running in %s mode", cfg.Env)
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))
		r.Mount("/play", quiz.PlayRoutes(cfg.QuizPlayHandler))
	})
	return r
}
