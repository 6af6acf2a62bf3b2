package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quiz-lambda/internal/apperror"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

// writeError renders domain errors with their own message and hides everything else.
func writeError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	if domainErr, ok := apperror.As(err); ok {
		config.Error(w, apperror.HTTPStatus(err), domainErr.Message)
		return
	}
	log.WithError(err).Error("Unexpected error while handling request")
	config.Error(w, http.StatusInternalServerError, "internal server error")
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload struct {
		Title json.RawMessage `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Warn("Invalid request body for create quiz")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// a title that is absent or not a string stays empty and fails validation
	var title string
	_ = json.Unmarshal(payload.Title, &title)

	quiz, err := h.service.CreateQuiz(r.Context(), title)
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusCreated, quiz)
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizzes, err := h.service.ListQuizzes(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "quizId")

	var input QuestionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.WithError(err).Warn("Invalid request body for add question")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question, err := h.service.AddQuestion(r.Context(), quizID, input)
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusCreated, question)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteQuiz(r.Context(), chi.URLParam(r, "quizId")); err != nil {
		writeError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
