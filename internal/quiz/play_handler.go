package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
)

type PlayHandler struct {
	service PlayService
}

func NewPlayHandler(s PlayService) *PlayHandler {
	return &PlayHandler{service: s}
}

func (h *PlayHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	questions, err := h.service.GetPlayableQuestions(r.Context(), chi.URLParam(r, "quizId"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *PlayHandler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload struct {
		Answers json.RawMessage `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Warn("Invalid request body for submit")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// answers that are absent, not an array, or hold non-object entries are rejected by the service as empty
	var answers []Answer
	if err := json.Unmarshal(payload.Answers, &answers); err != nil {
		answers = nil
	}

	result, err := h.service.SubmitAnswers(r.Context(), chi.URLParam(r, "quizId"), answers)
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, result)
}
