package quiz

import "github.com/google/uuid"

func newChoiceQuestion(quizID uuid.UUID, qType QuestionType, text string, options ...Option) Question {
	q := Question{ID: uuid.New(), QuizID: quizID, Text: text, Type: qType}
	for i := range options {
		options[i].ID = uuid.New()
		options[i].QuestionID = q.ID
		options[i].Position = i
	}
	q.Options = options
	return q
}

func opt(text string, correct bool) Option {
	return Option{Text: text, Correct: correct}
}

func answer(questionID, optionID uuid.UUID) Answer {
	return Answer{QuestionID: questionID.String(), SelectedOptionID: optionID.String()}
}
