package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-lambda/internal/apperror"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

type QuizService interface {
	CreateQuiz(ctx context.Context, title string) (*Quiz, error)
	AddQuestion(ctx context.Context, quizID string, input QuestionInput) (*Question, error)
	ListQuizzes(ctx context.Context) ([]*Quiz, error)
	DeleteQuiz(ctx context.Context, quizID string) error
}

type quizService struct {
	repo      QuizRepository
	playCache *PlayCache
}

func NewService(repo QuizRepository, playCache *PlayCache) QuizService {
	if playCache == nil {
		playCache = NewPlayCache(nil, 0)
	}
	return &quizService{
		repo:      repo,
		playCache: playCache,
	}
}

// parseQuizID treats an identifier that cannot exist as a missing quiz.
func parseQuizID(log logrus.FieldLogger, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, apperror.NewValidation(MsgQuizIDRequired)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		log.WithField("quiz_id", raw).Warn("Malformed quiz ID")
		return uuid.Nil, apperror.NewNotFound(MsgQuizNotFound)
	}
	return id, nil
}

func (s *quizService) CreateQuiz(ctx context.Context, title string) (*Quiz, error) {
	log := config.WithContext(ctx)
	log.Info("Creating quiz")

	title, err := ValidateQuizTitle(title)
	if err != nil {
		log.WithError(err).Warn("Rejected quiz title")
		return nil, err
	}

	existing, err := s.repo.FindQuizByTitle(ctx, title)
	if err != nil {
		log.WithError(err).Error("Failed to look up quiz by title")
		return nil, fmt.Errorf("find quiz by title: %w", err)
	}
	if existing != nil {
		log.WithField("title", title).Warn("Quiz title already in use")
		return nil, apperror.NewValidation(MsgQuizTitleTaken)
	}

	quiz := &Quiz{ID: uuid.New(), Title: title}
	if err := s.repo.CreateQuiz(ctx, quiz); err != nil {
		if errors.Is(err, ErrDuplicateTitle) {
			log.WithField("title", title).Warn("Quiz title claimed concurrently")
			return nil, apperror.NewValidation(MsgQuizTitleTaken)
		}
		log.WithError(err).Error("Failed to create quiz")
		return nil, fmt.Errorf("create quiz: %w", err)
	}

	log.WithField("quiz_id", quiz.ID).Info("Quiz created successfully")
	return quiz, nil
}

func (s *quizService) AddQuestion(ctx context.Context, quizID string, input QuestionInput) (*Question, error) {
	log := config.WithContext(ctx)
	log.WithField("quiz_id", quizID).Info("Adding question to quiz")

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

	normalized, err := ValidateQuestion(input)
	if err != nil {
		log.WithError(err).Warn("Rejected question payload")
		return nil, err
	}

	question := &Question{
		ID:     uuid.New(),
		QuizID: quiz.ID,
		Text:   normalized.Text,
		Type:   normalized.Type,
	}

	options := make([]Option, 0, len(normalized.Options))
	for i, o := range normalized.Options {
		options = append(options, Option{
			ID:         uuid.New(),
			QuestionID: question.ID,
			Text:       o.Text,
			Correct:    o.Correct,
			Position:   i,
		})
	}

	if err := s.repo.CreateQuestionWithOptions(ctx, question, options); err != nil {
		log.WithError(err).Error("Failed to persist question")
		return nil, fmt.Errorf("create question: %w", err)
	}

	s.playCache.Invalidate(ctx, quiz.ID)

	log.WithFields(logrus.Fields{
		"quiz_id":     quiz.ID,
		"question_id": question.ID,
		"options":     len(options),
	}).Info("Question added successfully")
	return question, nil
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]*Quiz, error) {
	log := config.WithContext(ctx)

	quizzes, err := s.repo.ListQuizzes(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list quizzes")
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	if quizzes == nil {
		quizzes = []*Quiz{}
	}
	return quizzes, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, quizID string) error {
	log := config.WithContext(ctx)
	log.WithField("quiz_id", quizID).Info("Deleting quiz")

	id, err := parseQuizID(log, quizID)
	if err != nil {
		return err
	}

	quiz, err := s.repo.FindQuizByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to find quiz")
		return fmt.Errorf("find quiz: %w", err)
	}
	if quiz == nil {
		return apperror.NewNotFound(MsgQuizNotFound)
	}

	if err := s.repo.DeleteQuiz(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete quiz")
		return fmt.Errorf("delete quiz: %w", err)
	}

	s.playCache.Invalidate(ctx, id)

	log.WithField("quiz_id", id).Info("Quiz deleted successfully")
	return nil
}
