package quiz

// SanitizeQuestions builds the taker view of a question set. Correctness is
// never copied; the result is empty, not nil, for a quiz without questions.
func SanitizeQuestions(questions []Question) []SanitizedQuestion {
	out := make([]SanitizedQuestion, 0, len(questions))
	for _, q := range questions {
		options := make([]SanitizedOption, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, SanitizedOption{ID: o.ID, Text: o.Text})
		}
		out = append(out, SanitizedQuestion{
			ID:      q.ID,
			Text:    q.Text,
			Type:    q.Type,
			Options: options,
		})
	}
	return out
}
