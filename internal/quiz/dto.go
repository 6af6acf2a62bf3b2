package quiz

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
)

type OptionInput struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

type QuestionInput struct {
	Text    string        `json:"text"`
	Type    QuestionType  `json:"type"`
	Options []OptionInput `json:"options"`
}

type SanitizedOption struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

type SanitizedQuestion struct {
	ID      uuid.UUID         `json:"id"`
	Text    string            `json:"text"`
	Type    QuestionType      `json:"type"`
	Options []SanitizedOption `json:"Options"`
}

// Answer identifiers are kept as submitted so that rejections can echo them back.
type Answer struct {
	QuestionID       string `json:"questionId"`
	SelectedOptionID string `json:"selectedOptionId"`
}

// UnmarshalJSON accepts ids of any scalar JSON type. Non-string ids keep their
// literal text (123 becomes "123") and null or absent ids become empty.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var raw struct {
		QuestionID       json.RawMessage `json:"questionId"`
		SelectedOptionID json.RawMessage `json:"selectedOptionId"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.QuestionID = rawID(raw.QuestionID)
	a.SelectedOptionID = rawID(raw.SelectedOptionID)
	return nil
}

func rawID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	return string(trimmed)
}

type Result struct {
	Score int `json:"score"`
	Total int `json:"total"`
}
