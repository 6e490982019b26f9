package services

import (
	"testing"

	"github.com/elham715/Exam-System/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeQuestion(t *testing.T, id uint, correct string, values ...string) models.Question {
	t.Helper()
	opts := make([]models.Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, models.Option{Value: v})
	}
	raw, err := models.MarshalOptions(opts)
	require.NoError(t, err)
	return models.Question{
		ID:            id,
		QuestionText:  "q",
		Options:       raw,
		CorrectOption: correct,
	}
}

func TestGradeMatchesByValue(t *testing.T) {
	svc := NewGradingService()
	questions := []models.Question{
		makeQuestion(t, 1, "4", "3", "4", "5"),
		makeQuestion(t, 2, "Paris", "London", "Paris"),
	}

	answers, correct := svc.Grade(7, questions, map[uint]string{
		1: "4",
		2: "London",
	})

	require.Len(t, answers, 2)
	assert.Equal(t, 1, correct)

	assert.Equal(t, uint(7), answers[0].StudentExamID)
	assert.Equal(t, uint(1), answers[0].QuestionID)
	assert.Equal(t, "4", answers[0].SelectedOption)
	assert.True(t, answers[0].IsCorrect)

	assert.Equal(t, uint(2), answers[1].QuestionID)
	assert.Equal(t, "London", answers[1].SelectedOption)
	assert.False(t, answers[1].IsCorrect)
}

func TestGradeUnansweredQuestions(t *testing.T) {
	svc := NewGradingService()
	questions := []models.Question{
		makeQuestion(t, 1, "a", "a", "b"),
		makeQuestion(t, 2, "b", "a", "b"),
	}

	// Only question 1 answered; question 2 still produces an answer row.
	answers, correct := svc.Grade(1, questions, map[uint]string{1: "a"})

	require.Len(t, answers, 2)
	assert.Equal(t, 1, correct)
	assert.Equal(t, "", answers[1].SelectedOption)
	assert.False(t, answers[1].IsCorrect)
}

func TestGradeNilSelections(t *testing.T) {
	svc := NewGradingService()
	questions := []models.Question{
		makeQuestion(t, 1, "a", "a", "b"),
		makeQuestion(t, 2, "b", "a", "b"),
	}

	answers, correct := svc.Grade(1, questions, nil)

	require.Len(t, answers, 2)
	assert.Equal(t, 0, correct)
	for _, a := range answers {
		assert.False(t, a.IsCorrect)
		assert.Equal(t, "", a.SelectedOption)
	}
}

func TestGradeEmptyCorrectOptionNeverMatches(t *testing.T) {
	svc := NewGradingService()
	q := makeQuestion(t, 1, "a", "a", "b")
	q.CorrectOption = ""

	// An unanswered question must not match a blank answer key.
	_, correct := NewGradingService().Grade(1, []models.Question{q}, map[uint]string{})
	assert.Equal(t, 0, correct)

	_, correct = svc.Grade(1, []models.Question{q}, map[uint]string{1: ""})
	assert.Equal(t, 0, correct)
}

func TestScoreRounding(t *testing.T) {
	svc := NewGradingService()

	tests := []struct {
		correct, total, want int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{10, 10, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{5, 8, 63},
		{1, 8, 13},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, svc.Score(tc.correct, tc.total),
			"score(%d/%d)", tc.correct, tc.total)
	}
}
