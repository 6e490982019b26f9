package services

import (
	"math"

	"github.com/elham715/Exam-System/internal/models"
)

// GradingService turns a set of raw selections into graded answer rows.
// Grading happens server-side against the authoritative answer key; the
// client never reports correctness or a score.
type GradingService struct{}

func NewGradingService() *GradingService {
	return &GradingService{}
}

// Grade produces one StudentAnswer per exam question, in question order.
// Questions absent from selections are graded as unanswered: an empty
// selection that is never correct. Correctness is matched by option value,
// not position.
func (s *GradingService) Grade(attemptID uint, questions []models.Question, selections map[uint]string) ([]models.StudentAnswer, int) {
	answers := make([]models.StudentAnswer, 0, len(questions))
	correct := 0

	for _, q := range questions {
		selected := selections[q.ID]
		isCorrect := selected != "" && selected == q.CorrectOption
		if isCorrect {
			correct++
		}
		answers = append(answers, models.StudentAnswer{
			StudentExamID:  attemptID,
			QuestionID:     q.ID,
			SelectedOption: selected,
			IsCorrect:      isCorrect,
		})
	}

	return answers, correct
}

// Score is the integer percentage round(correct/total*100). The divisor is
// the exam's full question count, not how many the student answered.
func (s *GradingService) Score(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
