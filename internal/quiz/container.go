package quiz

import (
	"time"

	"github.com/saulo-duarte/quiz-lambda/internal/cache"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler     *Handler
	PlayHandler *PlayHandler
	Service     QuizService
	PlayService PlayService
}

func NewQuizContainer(db *gorm.DB, store cache.Cache, playTTL time.Duration, publisher EventPublisher) *QuizContainer {
	repo := NewRepository(db)
	return newQuizContainer(repo, NewPlayCache(store, playTTL), publisher)
}

func newQuizContainer(repo QuizRepository, playCache *PlayCache, publisher EventPublisher) *QuizContainer {
	service := NewService(repo, playCache)
	playService := NewPlayService(repo, playCache, publisher)

	return &QuizContainer{
		Handler:     NewHandler(service),
		PlayHandler: NewPlayHandler(playService),
		Service:     service,
		PlayService: playService,
	}
}
