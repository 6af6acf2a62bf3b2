package quiz

import (
	"time"

	"github.com/google/uuid"
)

type Quiz struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"type:text;not null;uniqueIndex" json:"title"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`

	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
}

type Question struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"quizId"`
	Text      string       `gorm:"type:varchar(300);not null" json:"text"`
	Type      QuestionType `gorm:"type:varchar(16);not null" json:"type"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"-"`
	// Sequence is assigned by the database and orders questions by insertion.
	Sequence int64 `gorm:"autoIncrement;not null;index" json:"-"`

	Options []Option `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"Options"`
}

type Option struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Text       string    `gorm:"type:varchar(200);not null" json:"text"`
	Correct    bool      `gorm:"not null" json:"correct"`
	Position   int       `gorm:"not null" json:"-"`
}
