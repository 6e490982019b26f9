package models

import "time"

// Exam is a frozen snapshot of a question set. Once composed its question
// list never changes, regardless of later edits to the source set.
type Exam struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

// ExamQuestion is the snapshot join row fixing an exam's content at
// composition time.
type ExamQuestion struct {
	ExamID     uint     `gorm:"primaryKey" json:"exam_id"`
	QuestionID uint     `gorm:"primaryKey" json:"question_id"`
	Question   Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}
