package quiz

type QuestionType string

const (
	QuestionTypeSingle   QuestionType = "single"
	QuestionTypeMultiple QuestionType = "multiple"
	QuestionTypeText     QuestionType = "text"
)

var AllQuestionTypes = []QuestionType{
	QuestionTypeSingle,
	QuestionTypeMultiple,
	QuestionTypeText,
}

func (t QuestionType) IsValid() bool {
	for _, v := range AllQuestionTypes {
		if t == v {
			return true
		}
	}
	return false
}

// IsChoice reports whether the question is answered by picking an option.
func (t QuestionType) IsChoice() bool {
	return t == QuestionTypeSingle || t == QuestionTypeMultiple
}
