package services

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/elham715/Exam-System/internal/models"
	"github.com/elham715/Exam-System/internal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDB skips unless EXAM_INTEGRATION=1 and migrates a throwaway schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("EXAM_INTEGRATION") != "1" {
		t.Skip("set EXAM_INTEGRATION=1 to run integration tests")
	}

	dsn := os.Getenv("EXAM_TEST_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres password=postgres dbname=examsystem_test sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.AdminUser{},
		&models.QuestionSet{},
		&models.Chapter{},
		&models.Topic{},
		&models.Question{},
		&models.Exam{},
		&models.ExamQuestion{},
		&models.Student{},
		&models.StudentExam{},
		&models.StudentAnswer{},
	))
	return db
}

// seedExam builds a two-question exam: one question linked to a topic with a
// remediation link, one without a topic.
func seedExam(t *testing.T, db *gorm.DB) (*models.Exam, []models.Question, *models.Topic) {
	t.Helper()
	bank := NewQuestionBankService(db)

	suffix := time.Now().UnixNano()
	set, err := bank.CreateQuestionSet(fmt.Sprintf("itest set %d", suffix))
	require.NoError(t, err)

	chapter, err := bank.CreateChapter(fmt.Sprintf("itest chapter %d", suffix))
	require.NoError(t, err)

	topic, err := bank.CreateTopic(chapter.ID, "Kinematics", "https://youtube.com/watch?v=kinematics")
	require.NoError(t, err)

	q1, err := bank.AddQuestion(set.ID, QuestionInput{
		QuestionText: "What is 2+2?",
		ChapterID:    chapter.ID,
		TopicID:      &topic.ID,
		Options: []OptionInput{
			{Value: "3"},
			{Value: "4", IsCorrect: true},
			{Value: "5"},
		},
	})
	require.NoError(t, err)

	q2, err := bank.AddQuestion(set.ID, QuestionInput{
		QuestionText: "Capital of France?",
		ChapterID:    chapter.ID,
		Options: []OptionInput{
			{Value: "London"},
			{Value: "Paris", IsCorrect: true},
		},
	})
	require.NoError(t, err)

	exam, err := NewExamService(db).ComposeExam(fmt.Sprintf("itest exam %d", suffix), 30, set.ID)
	require.NoError(t, err)

	return exam, []models.Question{*q1, *q2}, topic
}

func TestComposeExamFromEmptySet(t *testing.T) {
	db := openTestDB(t)
	bank := NewQuestionBankService(db)

	set, err := bank.CreateQuestionSet(fmt.Sprintf("empty set %d", time.Now().UnixNano()))
	require.NoError(t, err)

	_, err = NewExamService(db).ComposeExam("hopeless", 30, set.ID)
	assert.True(t, errors.Is(err, ErrEmptySet))
}

func TestLoadExamShufflesButKeepsQuestionSet(t *testing.T) {
	db := openTestDB(t)
	exam, questions, _ := seedExam(t, db)

	svc := NewAttemptService(db, NewGradingService(), ws.NewHub())

	want := make(map[uint]bool)
	for _, q := range questions {
		want[q.ID] = true
	}

	// Every load returns the same id set; the answer key never leaks.
	for i := 0; i < 5; i++ {
		delivery, err := svc.LoadExam(exam.ID)
		require.NoError(t, err)
		require.Len(t, delivery.Questions, len(questions))

		got := make(map[uint]bool)
		for _, q := range delivery.Questions {
			got[q.ID] = true
		}
		assert.Equal(t, want, got)
	}
}

func TestStartAttemptUpsertsStudentByEmail(t *testing.T) {
	db := openTestDB(t)
	exam, _, _ := seedExam(t, db)

	svc := NewAttemptService(db, NewGradingService(), ws.NewHub())
	email := fmt.Sprintf("itest_%d@example.test", time.Now().UnixNano())

	first, err := svc.StartAttempt(exam.ID, "Alice", email)
	require.NoError(t, err)
	defer svc.stopCountdown(first.ID)

	second, err := svc.StartAttempt(exam.ID, "Alice B.", email)
	require.NoError(t, err)
	defer svc.stopCountdown(second.ID)

	assert.Equal(t, first.StudentID, second.StudentID, "same email must map to one student")
	assert.NotEqual(t, first.ID, second.ID, "each start opens a fresh attempt")

	var student models.Student
	require.NoError(t, db.First(&student, first.StudentID).Error)
	assert.Equal(t, "Alice B.", student.Name, "re-registering updates the display name")
}

func TestSubmitAttemptGradesAndIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	exam, questions, _ := seedExam(t, db)

	svc := NewAttemptService(db, NewGradingService(), ws.NewHub())
	email := fmt.Sprintf("itest_%d@example.test", time.Now().UnixNano())

	attempt, err := svc.StartAttempt(exam.ID, "Bob", email)
	require.NoError(t, err)

	// One right, one wrong out of two.
	first, err := svc.SubmitAttempt(attempt.ID, map[uint]string{
		questions[0].ID: "4",
		questions[1].ID: "London",
	})
	require.NoError(t, err)
	require.NotNil(t, first.SubmittedAt)
	assert.Equal(t, 50, first.Score)
	assert.False(t, svc.countdownActive(attempt.ID))

	// Replaying with different selections changes nothing.
	second, err := svc.SubmitAttempt(attempt.ID, map[uint]string{
		questions[0].ID: "4",
		questions[1].ID: "Paris",
	})
	require.NoError(t, err)
	assert.Equal(t, first.Score, second.Score)
	require.NotNil(t, second.SubmittedAt)
	assert.WithinDuration(t, *first.SubmittedAt, *second.SubmittedAt, time.Second)

	var count int64
	require.NoError(t, db.Model(&models.StudentAnswer{}).
		Where("student_exam_id = ?", attempt.ID).Count(&count).Error)
	assert.Equal(t, int64(len(questions)), count, "exactly one answer row per question")
}

func TestSubmitAttemptWithNoAnswersScoresZero(t *testing.T) {
	db := openTestDB(t)
	exam, questions, _ := seedExam(t, db)

	svc := NewAttemptService(db, NewGradingService(), ws.NewHub())
	email := fmt.Sprintf("itest_%d@example.test", time.Now().UnixNano())

	attempt, err := svc.StartAttempt(exam.ID, "Carol", email)
	require.NoError(t, err)

	// The auto-submit path passes nil selections.
	result, err := svc.SubmitAttempt(attempt.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)

	var count int64
	require.NoError(t, db.Model(&models.StudentAnswer{}).
		Where("student_exam_id = ?", attempt.ID).Count(&count).Error)
	assert.Equal(t, int64(len(questions)), count, "unanswered questions still get rows")
}

func TestResultsGroupMistakesByTopic(t *testing.T) {
	db := openTestDB(t)
	exam, questions, topic := seedExam(t, db)

	attempts := NewAttemptService(db, NewGradingService(), ws.NewHub())
	email := fmt.Sprintf("itest_%d@example.test", time.Now().UnixNano())

	attempt, err := attempts.StartAttempt(exam.ID, "Dave", email)
	require.NoError(t, err)

	// Both wrong: one mistake lands in the topic group, one in the fallback.
	_, err = attempts.SubmitAttempt(attempt.ID, map[uint]string{
		questions[0].ID: "3",
		questions[1].ID: "London",
	})
	require.NoError(t, err)

	view, err := NewResultsService(db).GetResults(attempt.ID)
	require.NoError(t, err)

	assert.Equal(t, "Dave", view.StudentName)
	assert.Equal(t, 0, view.Score)
	assert.Equal(t, 2, view.TotalQuestions)
	assert.Equal(t, 2, view.MistakeCount)
	require.Len(t, view.MistakenTopics, 2)

	byName := make(map[string]TopicGroup)
	for _, g := range view.MistakenTopics {
		byName[g.Topic] = g
	}

	kinematics, ok := byName[topic.Name]
	require.True(t, ok)
	assert.Equal(t, topic.YoutubeLink, kinematics.YoutubeLink)
	require.Len(t, kinematics.Questions, 1)
	assert.Equal(t, "3", kinematics.Questions[0].SelectedOption)
	assert.Equal(t, "4", kinematics.Questions[0].CorrectOption)

	fallback, ok := byName[NoTopicBucket]
	require.True(t, ok)
	assert.Empty(t, fallback.YoutubeLink)
	require.Len(t, fallback.Questions, 1)
}

func TestCountdownAutoSubmits(t *testing.T) {
	db := openTestDB(t)
	exam, _, _ := seedExam(t, db)

	svc := NewAttemptService(db, NewGradingService(), ws.NewHub())
	svc.tickInterval = 10 * time.Millisecond
	email := fmt.Sprintf("itest_%d@example.test", time.Now().UnixNano())

	attempt, err := svc.StartAttempt(exam.ID, "Eve", email)
	require.NoError(t, err)

	// 30 minutes of budget at a 10ms tick drains in ~18s; poll instead of
	// sleeping the whole window.
	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		var stored models.StudentExam
		require.NoError(t, db.First(&stored, attempt.ID).Error)
		if stored.SubmittedAt != nil {
			assert.Equal(t, 0, stored.Score, "auto-submit grades everything unanswered")
			assert.False(t, svc.countdownActive(attempt.ID))
			return
		}
		time.Sleep(250 * time.Millisecond)
	}
	t.Fatal("countdown never auto-submitted the attempt")
}
