package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateQuiz)
	r.Get("/", h.ListQuizzes)
	r.Delete("/{quizId}", h.DeleteQuiz)
	r.Post("/{quizId}/questions", h.AddQuestion)
	return r
}

func PlayRoutes(h *PlayHandler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{quizId}/questions", h.GetQuestions)
	r.Post("/{quizId}/submit", h.Submit)
	return r
}
