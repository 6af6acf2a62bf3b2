package quiz

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryRepository is an in-process QuizRepository for service and handler tests.
type memoryRepository struct {
	mu        sync.Mutex
	quizzes   []*Quiz
	questions []Question

	// skipTitleLookup hides existing titles from FindQuizByTitle to simulate a
	// concurrent create that slips past the pre-check.
	skipTitleLookup bool
	failWith        error
	sequence        int64
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{}
}

func (m *memoryRepository) CreateQuiz(_ context.Context, q *Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return m.failWith
	}
	for _, existing := range m.quizzes {
		if existing.Title == q.Title {
			return ErrDuplicateTitle
		}
	}
	q.CreatedAt = time.Now()
	stored := *q
	m.quizzes = append(m.quizzes, &stored)
	return nil
}

func (m *memoryRepository) FindQuizByID(_ context.Context, id uuid.UUID) (*Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, q := range m.quizzes {
		if q.ID == id {
			found := *q
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryRepository) FindQuizByTitle(_ context.Context, title string) (*Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return nil, m.failWith
	}
	if m.skipTitleLookup {
		return nil, nil
	}
	for _, q := range m.quizzes {
		if q.Title == title {
			found := *q
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryRepository) ListQuizzes(_ context.Context) ([]*Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []*Quiz
	for _, q := range m.quizzes {
		out = append(out, &Quiz{ID: q.ID, Title: q.Title, CreatedAt: q.CreatedAt})
	}
	return out, nil
}

func (m *memoryRepository) DeleteQuiz(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return m.failWith
	}
	quizzes := m.quizzes[:0]
	for _, q := range m.quizzes {
		if q.ID != id {
			quizzes = append(quizzes, q)
		}
	}
	m.quizzes = quizzes

	questions := m.questions[:0]
	for _, q := range m.questions {
		if q.QuizID != id {
			questions = append(questions, q)
		}
	}
	m.questions = questions
	return nil
}

func (m *memoryRepository) CreateQuestionWithOptions(_ context.Context, question *Question, options []Option) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return m.failWith
	}
	for i := range options {
		options[i].QuestionID = question.ID
	}
	question.Options = options
	m.sequence++
	question.Sequence = m.sequence

	stored := *question
	stored.Options = append([]Option(nil), options...)
	m.questions = append(m.questions, stored)
	return nil
}

func (m *memoryRepository) ListQuestionsByQuiz(_ context.Context, quizID uuid.UUID, includeOptions bool) ([]Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []Question
	for _, q := range m.questions {
		if q.QuizID != quizID {
			continue
		}
		copied := q
		copied.Options = nil
		if includeOptions {
			copied.Options = append([]Option(nil), q.Options...)
		}
		out = append(out, copied)
	}
	return out, nil
}

func (m *memoryRepository) questionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.questions)
}
