package quiz

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-lambda/internal/apperror"
)

// GradeSubmission scores answers against the quiz's stored questions, which
// must carry their options. Unanswered questions score nothing but still
// count toward the total. Free-text questions are never scored.
//
// A multiple-choice question is credited only when the selected option is the
// first option flagged correct.
//
// When a question is answered more than once, the first answer wins.
func GradeSubmission(quiz *Quiz, questions []Question, answers []Answer) (*Result, error) {
	if len(answers) == 0 {
		return nil, apperror.NewValidation(MsgAnswersRequired)
	}
	if quiz == nil {
		return nil, apperror.NewNotFound(MsgQuizNotFound)
	}
	if len(questions) == 0 {
		return nil, apperror.NewValidation(MsgNoQuestions)
	}

	for _, a := range answers {
		if findQuestion(questions, a.QuestionID) == nil {
			return nil, apperror.NewValidation(fmt.Sprintf("Invalid question ID: %s", a.QuestionID))
		}
	}

	score := 0
	for i := range questions {
		q := &questions[i]

		answer := findAnswer(answers, q.ID)
		if answer == nil || !q.Type.IsChoice() {
			continue
		}

		selected := findOption(q.Options, answer.SelectedOptionID)
		if selected == nil {
			return nil, apperror.NewValidation(fmt.Sprintf("Invalid option selected for question ID %s", q.ID))
		}

		correct := firstCorrectOption(q.Options)
		if correct != nil && selected.ID == correct.ID {
			score++
		}
	}

	return &Result{Score: score, Total: len(questions)}, nil
}

func matchesID(raw string, id uuid.UUID) bool {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	return err == nil && parsed == id
}

func findQuestion(questions []Question, rawID string) *Question {
	for i := range questions {
		if matchesID(rawID, questions[i].ID) {
			return &questions[i]
		}
	}
	return nil
}

func findAnswer(answers []Answer, questionID uuid.UUID) *Answer {
	for i := range answers {
		if matchesID(answers[i].QuestionID, questionID) {
			return &answers[i]
		}
	}
	return nil
}

func findOption(options []Option, rawID string) *Option {
	for i := range options {
		if matchesID(rawID, options[i].ID) {
			return &options[i]
		}
	}
	return nil
}

func firstCorrectOption(options []Option) *Option {
	for i := range options {
		if options[i].Correct {
			return &options[i]
		}
	}
	return nil
}
