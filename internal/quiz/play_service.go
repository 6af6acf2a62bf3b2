package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-lambda/internal/apperror"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

const SubmissionGradedEvent = "quiz.submission.graded"

type SubmissionGraded struct {
	QuizID   uuid.UUID `json:"quizId"`
	Score    int       `json:"score"`
	Total    int       `json:"total"`
	GradedAt time.Time `json:"gradedAt"`
}

// EventPublisher is satisfied by events.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type PlayService interface {
	GetPlayableQuestions(ctx context.Context, quizID string) ([]SanitizedQuestion, error)
	SubmitAnswers(ctx context.Context, quizID string, answers []Answer) (*Result, error)
}

type playService struct {
	repo      QuizRepository
	playCache *PlayCache
	publisher EventPublisher
	now       func() time.Time
}

func NewPlayService(repo QuizRepository, playCache *PlayCache, publisher EventPublisher) PlayService {
	if playCache == nil {
		playCache = NewPlayCache(nil, 0)
	}
	return &playService{
		repo:      repo,
		playCache: playCache,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *playService) findQuiz(ctx context.Context, log logrus.FieldLogger, quizID string) (*Quiz, error) {
	id, err := parseQuizID(log, quizID)
	if err != nil {
		return nil, err
	}

	quiz, err := s.repo.FindQuizByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to find quiz")
		return nil, fmt.Errorf("find quiz: %w", err)
	}
	if quiz == nil {
		log.WithField("quiz_id", id).Warn("Quiz not found")
		return nil, apperror.NewNotFound(MsgQuizNotFound)
	}
	return quiz, nil
}

func (s *playService) GetPlayableQuestions(ctx context.Context, quizID string) ([]SanitizedQuestion, error) {
	log := config.WithContext(ctx)

	quiz, err := s.findQuiz(ctx, log, quizID)
	if err != nil {
		return nil, err
	}

	version, cacheable := s.playCache.Version(ctx, quiz.ID)
	if cacheable {
		if cached, ok := s.playCache.Get(ctx, quiz.ID, version); ok {
			log.WithField("quiz_id", quiz.ID).Debug("Serving play questions from cache")
			return cached, nil
		}
	}

	questions, err := s.repo.ListQuestionsByQuiz(ctx, quiz.ID, true)
	if err != nil {
		log.WithError(err).Error("Failed to list quiz questions")
		return nil, fmt.Errorf("list questions: %w", err)
	}

	sanitized := SanitizeQuestions(questions)
	if cacheable {
		s.playCache.Set(ctx, quiz.ID, version, sanitized)
	}
	return sanitized, nil
}

func (s *playService) SubmitAnswers(ctx context.Context, quizID string, answers []Answer) (*Result, error) {
	log := config.WithContext(ctx)

	if len(answers) == 0 {
		return nil, apperror.NewValidation(MsgAnswersRequired)
	}

	quiz, err := s.findQuiz(ctx, log, quizID)
	if err != nil {
		return nil, err
	}

	questions, err := s.repo.ListQuestionsByQuiz(ctx, quiz.ID, true)
	if err != nil {
		log.WithError(err).Error("Failed to list quiz questions")
		return nil, fmt.Errorf("list questions: %w", err)
	}

	result, err := GradeSubmission(quiz, questions, answers)
	if err != nil {
		log.WithError(err).WithField("quiz_id", quiz.ID).Warn("Rejected submission")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"quiz_id": quiz.ID,
		"score":   result.Score,
		"total":   result.Total,
	}).Info("Submission graded")

	if s.publisher != nil {
		event := SubmissionGraded{
			QuizID:   quiz.ID,
			Score:    result.Score,
			Total:    result.Total,
			GradedAt: s.now().UTC(),
		}
		if err := s.publisher.Publish(ctx, SubmissionGradedEvent, event); err != nil {
			log.WithError(err).Warn("Failed to publish submission graded event")
		}
	}

	return result, nil
}
