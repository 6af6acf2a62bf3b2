package quiz

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saulo-duarte/quiz-lambda/internal/apperror"
)

// ValidateQuizTitle returns the trimmed title. Uniqueness is checked against storage by the caller.
func ValidateQuizTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", apperror.NewValidation(MsgQuizTitleRequired)
	}
	return trimmed, nil
}

// ValidateQuestion checks a question payload and returns it normalized: text
// trimmed, option texts trimmed, options dropped for free-text questions.
// The first violated rule is reported.
func ValidateQuestion(in QuestionInput) (QuestionInput, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return QuestionInput{}, apperror.NewValidation(MsgQuestionTextRequired)
	}

	if utf8.RuneCountInString(text) > MaxQuestionTextLength {
		return QuestionInput{}, apperror.NewValidation(MsgQuestionTextTooLong)
	}

	if !in.Type.IsValid() {
		return QuestionInput{}, apperror.NewValidation(questionTypeMessage())
	}

	if in.Type.IsChoice() && len(in.Options) == 0 {
		return QuestionInput{}, apperror.NewValidation(MsgOptionsRequired)
	}

	if len(in.Options) > 0 && !hasCorrectOption(in.Options) {
		return QuestionInput{}, apperror.NewValidation(MsgCorrectOptionRequired)
	}

	options := make([]OptionInput, 0, len(in.Options))
	for _, opt := range in.Options {
		optText := strings.TrimSpace(opt.Text)
		if optText == "" {
			return QuestionInput{}, apperror.NewValidation(MsgOptionTextRequired)
		}
		if utf8.RuneCountInString(optText) > MaxOptionTextLength {
			return QuestionInput{}, apperror.NewValidation(MsgOptionTextTooLong)
		}
		options = append(options, OptionInput{Text: optText, Correct: opt.Correct})
	}

	if !in.Type.IsChoice() {
		options = nil
	}

	return QuestionInput{Text: text, Type: in.Type, Options: options}, nil
}

func hasCorrectOption(options []OptionInput) bool {
	for _, o := range options {
		if o.Correct {
			return true
		}
	}
	return false
}

func questionTypeMessage() string {
	names := make([]string, len(AllQuestionTypes))
	for i, t := range AllQuestionTypes {
		names[i] = string(t)
	}
	return fmt.Sprintf("Question type must be one of: %s", strings.Join(names, ", "))
}
