package models

import "time"

// StudentExam is one attempt: a student's single pass through an exam from
// start to submission. SubmittedAt doubles as the terminal-state marker; a
// nil value means the attempt is still in progress.
type StudentExam struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	StudentID        uint            `gorm:"not null;index" json:"student_id"`
	Student          Student         `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	ExamID           uint            `gorm:"not null;index" json:"exam_id"`
	Exam             Exam            `gorm:"foreignKey:ExamID" json:"exam,omitempty"`
	StartedAt        time.Time       `gorm:"not null" json:"started_at"`
	SubmittedAt      *time.Time      `json:"submitted_at,omitempty"`
	Score            int             `gorm:"not null;default:0" json:"score"`
	TimeTakenSeconds int             `gorm:"not null;default:0" json:"time_taken_seconds"`
	Answers          []StudentAnswer `gorm:"foreignKey:StudentExamID" json:"answers,omitempty"`
}

// StudentAnswer holds one graded answer per exam question per attempt,
// written in bulk at submission. Unanswered questions still get a row with an
// empty selection. The unique index makes a replayed submission a no-op
// instead of a duplicate batch.
type StudentAnswer struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	StudentExamID  uint     `gorm:"not null;uniqueIndex:idx_attempt_question" json:"student_exam_id"`
	QuestionID     uint     `gorm:"not null;uniqueIndex:idx_attempt_question" json:"question_id"`
	Question       Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	SelectedOption string   `gorm:"size:500;not null;default:''" json:"selected_option"`
	IsCorrect      bool     `gorm:"not null;default:false" json:"is_correct"`
}
