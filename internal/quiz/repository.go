package quiz

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDuplicateTitle = errors.New("quiz title already exists")

type QuizRepository interface {
	CreateQuiz(ctx context.Context, q *Quiz) error
	FindQuizByID(ctx context.Context, id uuid.UUID) (*Quiz, error)
	FindQuizByTitle(ctx context.Context, title string) (*Quiz, error)
	ListQuizzes(ctx context.Context) ([]*Quiz, error)
	DeleteQuiz(ctx context.Context, id uuid.UUID) error

	CreateQuestionWithOptions(ctx context.Context, question *Question, options []Option) error
	ListQuestionsByQuiz(ctx context.Context, quizID uuid.UUID, includeOptions bool) ([]Question, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

// AutoMigrate creates the quiz tables, the unique title index and the cascading foreign keys.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Quiz{}, &Question{}, &Option{})
}

// CreateQuiz relies on the unique title index; a conflict is reported as ErrDuplicateTitle.
func (r *quizRepository) CreateQuiz(ctx context.Context, q *Quiz) error {
	if err := r.db.WithContext(ctx).Omit("Questions").Create(q).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTitle
		}
		return err
	}
	return nil
}

func (r *quizRepository) FindQuizByID(ctx context.Context, id uuid.UUID) (*Quiz, error) {
	var quiz Quiz
	if err := r.db.WithContext(ctx).First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindQuizByTitle(ctx context.Context, title string) (*Quiz, error) {
	var quiz Quiz
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) ListQuizzes(ctx context.Context) ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.WithContext(ctx).
		Select("id", "title", "created_at").
		Order("created_at ASC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

// DeleteQuiz removes the quiz with its questions and options in one transaction.
func (r *quizRepository) DeleteQuiz(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var questionIDs []uuid.UUID
		if err := tx.Model(&Question{}).Where("quiz_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}

		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&Option{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Quiz{}, "id = ?", id).Error
	})
}

func (r *quizRepository) CreateQuestionWithOptions(ctx context.Context, question *Question, options []Option) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Options").Create(question).Error; err != nil {
			return err
		}

		for i := range options {
			options[i].QuestionID = question.ID
		}

		if len(options) > 0 {
			if err := tx.Create(&options).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	question.Options = options
	return nil
}

func (r *quizRepository) ListQuestionsByQuiz(ctx context.Context, quizID uuid.UUID, includeOptions bool) ([]Question, error) {
	query := r.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("sequence ASC")

	if includeOptions {
		query = query.Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
	}

	var questions []Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
