package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/elham715/Exam-System/internal/models"
	"github.com/elham715/Exam-System/internal/ws"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errAlreadySubmitted aborts the submission transaction when another caller
// claimed the attempt first (manual submit racing the countdown's auto-submit).
var errAlreadySubmitted = errors.New("attempt already submitted")

// AttemptService runs the exam delivery flow: it hands out a freshly shuffled
// view of an exam, registers students, owns the per-attempt countdown and
// grades submissions. At most one countdown goroutine exists per attempt.
type AttemptService struct {
	db      *gorm.DB
	grading *GradingService
	hub     *ws.Hub

	mu           sync.Mutex
	countdowns   map[uint]chan struct{}
	tickInterval time.Duration
}

func NewAttemptService(db *gorm.DB, grading *GradingService, hub *ws.Hub) *AttemptService {
	return &AttemptService{
		db:           db,
		grading:      grading,
		hub:          hub,
		countdowns:   make(map[uint]chan struct{}),
		tickInterval: time.Second,
	}
}

// DeliveryQuestion is a question as shown to the student: the answer key and
// remediation links stay server-side.
type DeliveryQuestion struct {
	ID           uint            `json:"id"`
	QuestionText string          `json:"question_text"`
	Options      []models.Option `json:"options"`
	ImageURL     string          `json:"image_url,omitempty"`
}

type ExamDelivery struct {
	Exam      models.Exam        `json:"exam"`
	Questions []DeliveryQuestion `json:"questions"`
}

type TimeLeft struct {
	AttemptID uint `json:"attempt_id"`
	Seconds   int  `json:"seconds"`
}

// LoadExam returns the exam's snapshotted questions in a fresh uniform-random
// order. The permutation is not persisted: reloading shuffles again, but the
// set of question ids never changes.
func (s *AttemptService) LoadExam(examID uint) (*ExamDelivery, error) {
	var exam models.Exam
	if err := s.db.First(&exam, examID).Error; err != nil {
		return nil, fmt.Errorf("%w: exam %d", ErrNotFound, examID)
	}

	questions, err := s.snapshotQuestions(examID)
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	delivery := &ExamDelivery{Exam: exam}
	for _, q := range questions {
		delivery.Questions = append(delivery.Questions, DeliveryQuestion{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      q.OptionList(),
			ImageURL:     q.ImageURL,
		})
	}
	return delivery, nil
}

// StartAttempt registers the student (upsert by email) and opens an attempt.
// The countdown starts only once both writes succeeded; a failure leaves the
// student free to resubmit the start form.
func (s *AttemptService) StartAttempt(examID uint, name, email string) (*models.StudentExam, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}

	var exam models.Exam
	if err := s.db.First(&exam, examID).Error; err != nil {
		return nil, fmt.Errorf("%w: exam %d", ErrNotFound, examID)
	}

	student := models.Student{Name: name, Email: email}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&student).Error; err != nil {
		return nil, err
	}

	attempt := models.StudentExam{
		StudentID: student.ID,
		ExamID:    examID,
		StartedAt: time.Now(),
	}
	if err := s.db.Create(&attempt).Error; err != nil {
		return nil, err
	}

	s.startCountdown(attempt.ID, exam.DurationMinutes*60)
	return &attempt, nil
}

// SubmitAttempt grades the attempt and persists the result exactly once.
// Replaying it for an already-submitted attempt returns the stored result
// without touching the store, so a lingering countdown tick racing a manual
// click cannot double-insert answers or change the score.
func (s *AttemptService) SubmitAttempt(attemptID uint, selections map[uint]string) (*models.StudentExam, error) {
	s.stopCountdown(attemptID)

	var attempt models.StudentExam
	if err := s.db.Preload("Exam").First(&attempt, attemptID).Error; err != nil {
		return nil, fmt.Errorf("%w: attempt %d", ErrNotFound, attemptID)
	}
	if attempt.SubmittedAt != nil {
		return &attempt, nil
	}

	questions, err := s.snapshotQuestions(attempt.ExamID)
	if err != nil {
		return nil, err
	}

	answers, correct := s.grading.Grade(attemptID, questions, selections)
	score := s.grading.Score(correct, len(questions))

	now := time.Now()
	limit := attempt.Exam.DurationMinutes * 60
	taken := int(now.Sub(attempt.StartedAt).Seconds())
	if taken < 0 {
		taken = 0
	}
	if taken > limit {
		taken = limit
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Claiming submitted_at first makes the whole procedure first-writer-
		// wins; the unique (student_exam_id, question_id) index backs it up.
		claim := tx.Model(&models.StudentExam{}).
			Where("id = ? AND submitted_at IS NULL", attemptID).
			Updates(map[string]interface{}{
				"submitted_at":       now,
				"score":              score,
				"time_taken_seconds": taken,
			})
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return errAlreadySubmitted
		}
		return tx.Create(&answers).Error
	})
	if errors.Is(err, errAlreadySubmitted) {
		s.db.Preload("Exam").First(&attempt, attemptID)
		return &attempt, nil
	}
	if err != nil {
		return nil, err
	}

	attempt.SubmittedAt = &now
	attempt.Score = score
	attempt.TimeTakenSeconds = taken

	s.hub.Broadcast(attemptID, ws.Message{Type: "submitted", Data: attempt})
	return &attempt, nil
}

func (s *AttemptService) snapshotQuestions(examID uint) ([]models.Question, error) {
	var links []models.ExamQuestion
	if err := s.db.Where("exam_id = ?", examID).
		Order("question_id ASC").
		Preload("Question").
		Find(&links).Error; err != nil {
		return nil, err
	}

	questions := make([]models.Question, 0, len(links))
	for _, link := range links {
		if link.Question.ID == 0 {
			// Question deleted from the bank after composition; nothing left
			// to show or grade for it.
			continue
		}
		questions = append(questions, link.Question)
	}
	return questions, nil
}

// startCountdown launches the attempt's ticker goroutine. Re-triggering it
// for a running attempt is a no-op: the registry holds at most one stop
// channel per attempt.
func (s *AttemptService) startCountdown(attemptID uint, seconds int) {
	s.mu.Lock()
	if _, running := s.countdowns[attemptID]; running {
		s.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	s.countdowns[attemptID] = stop
	s.mu.Unlock()

	go s.runCountdown(attemptID, seconds, stop)
}

// stopCountdown is idempotent; it releases the ticker goroutine on every
// exit path, including submission and error paths.
func (s *AttemptService) stopCountdown(attemptID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stop, ok := s.countdowns[attemptID]; ok {
		close(stop)
		delete(s.countdowns, attemptID)
	}
}

func (s *AttemptService) countdownActive(attemptID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.countdowns[attemptID]
	return ok
}

func (s *AttemptService) runCountdown(attemptID uint, remaining int, stop chan struct{}) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			remaining--
			s.hub.Broadcast(attemptID, ws.Message{
				Type: "time_left",
				Data: TimeLeft{AttemptID: attemptID, Seconds: remaining},
			})
			if remaining <= 0 {
				// Time is up. The server never saw the in-progress answer
				// map, so everything unsubmitted grades as unanswered; if a
				// manual submit is in flight it wins the claim instead.
				if _, err := s.SubmitAttempt(attemptID, nil); err != nil {
					log.Printf("attempt %d: auto-submit failed: %v", attemptID, err)
				}
				return
			}
		}
	}
}
