package models

import "time"

type QuestionSet struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Questions []Question `gorm:"foreignKey:QuestionSetID" json:"questions,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
