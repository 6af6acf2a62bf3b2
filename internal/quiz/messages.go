package quiz

const (
	MaxQuestionTextLength = 300
	MaxOptionTextLength   = 200
)

const (
	MsgQuizIDRequired        = "Quiz ID is required."
	MsgQuizTitleRequired     = "Quiz title is required."
	MsgQuizTitleTaken        = "Quiz with this title already exists"
	MsgQuizNotFound          = "Quiz not found."
	MsgQuestionTextRequired  = "Question text is required."
	MsgQuestionTextTooLong   = "Question text cannot exceed 300 characters."
	MsgOptionsRequired       = "Options are required for single/multiple choice questions."
	MsgCorrectOptionRequired = "At least one option must be marked as correct."
	MsgOptionTextRequired    = "Option text cannot be empty."
	MsgOptionTextTooLong     = "Option text cannot exceed 200 characters."
	MsgAnswersRequired       = "Answers must be a non-empty array."
	MsgNoQuestions           = "No questions found for this quiz."
)
