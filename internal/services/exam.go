package services

import (
	"fmt"

	"github.com/elham715/Exam-System/internal/models"

	"gorm.io/gorm"
)

// ExamService composes exams from question sets. Composition snapshots the
// set's current question ids into exam_questions, so later edits to the set
// never alter an existing exam.
type ExamService struct {
	db *gorm.DB
}

func NewExamService(db *gorm.DB) *ExamService {
	return &ExamService{db: db}
}

func (s *ExamService) ComposeExam(title string, durationMinutes int, questionSetID uint) (*models.Exam, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: exam title is required", ErrValidation)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrValidation)
	}

	var set models.QuestionSet
	if err := s.db.First(&set, questionSetID).Error; err != nil {
		return nil, fmt.Errorf("%w: question set %d", ErrNotFound, questionSetID)
	}

	var questionIDs []uint
	if err := s.db.Model(&models.Question{}).
		Where("question_set_id = ?", questionSetID).
		Order("created_at ASC").
		Pluck("id", &questionIDs).Error; err != nil {
		return nil, err
	}
	if len(questionIDs) == 0 {
		return nil, ErrEmptySet
	}

	// Exam row and snapshot rows commit together; a failed link insert must
	// not leave an orphaned empty exam behind.
	exam := models.Exam{
		Title:           title,
		DurationMinutes: durationMinutes,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&exam).Error; err != nil {
			return err
		}
		links := make([]models.ExamQuestion, 0, len(questionIDs))
		for _, qid := range questionIDs {
			links = append(links, models.ExamQuestion{ExamID: exam.ID, QuestionID: qid})
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		return nil, err
	}

	return &exam, nil
}

func (s *ExamService) ListExams() ([]models.Exam, error) {
	var exams []models.Exam
	if err := s.db.Order("created_at DESC").Find(&exams).Error; err != nil {
		return nil, err
	}
	return exams, nil
}

func (s *ExamService) GetExam(examID uint) (*models.Exam, error) {
	var exam models.Exam
	if err := s.db.First(&exam, examID).Error; err != nil {
		return nil, fmt.Errorf("%w: exam %d", ErrNotFound, examID)
	}
	return &exam, nil
}

func (s *ExamService) DeleteExam(examID uint) error {
	result := s.db.Delete(&models.Exam{}, examID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: exam %d", ErrNotFound, examID)
	}
	return s.db.Where("exam_id = ?", examID).Delete(&models.ExamQuestion{}).Error
}
