package services

import (
	"fmt"
	"time"

	"github.com/elham715/Exam-System/internal/models"

	"gorm.io/gorm"
)

// NoTopicBucket collects mistakes on questions whose topic no longer
// resolves or was never set.
const NoTopicBucket = "No Topic"

// ResultsService builds the post-exam report: score summary plus mistakes
// grouped by topic, each group carrying its remediation video link.
type ResultsService struct {
	db *gorm.DB
}

func NewResultsService(db *gorm.DB) *ResultsService {
	return &ResultsService{db: db}
}

type MistakenAnswer struct {
	QuestionID     uint            `json:"question_id"`
	QuestionText   string          `json:"question_text"`
	Options        []models.Option `json:"options"`
	SelectedOption string          `json:"selected_option"`
	CorrectOption  string          `json:"correct_option"`
	ImageURL       string          `json:"image_url,omitempty"`
	YoutubeLink    string          `json:"youtube_link,omitempty"`
}

type TopicGroup struct {
	Topic       string           `json:"topic"`
	YoutubeLink string           `json:"youtube_link,omitempty"`
	Questions   []MistakenAnswer `json:"questions"`
}

type ResultView struct {
	AttemptID        uint         `json:"attempt_id"`
	ExamTitle        string       `json:"exam_title"`
	StudentName      string       `json:"student_name"`
	Score            int          `json:"score"`
	TimeTakenSeconds int          `json:"time_taken_seconds"`
	SubmittedAt      *time.Time   `json:"submitted_at,omitempty"`
	TotalQuestions   int          `json:"total_questions"`
	MistakeCount     int          `json:"mistake_count"`
	MistakenTopics   []TopicGroup `json:"mistaken_topics"`
}

func (s *ResultsService) GetResults(attemptID uint) (*ResultView, error) {
	var attempt models.StudentExam
	err := s.db.
		Preload("Exam").
		Preload("Student").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Answers.Question").
		Preload("Answers.Question.Topic").
		First(&attempt, attemptID).Error
	if err != nil {
		return nil, fmt.Errorf("%w: attempt %d", ErrNotFound, attemptID)
	}

	view := &ResultView{
		AttemptID:        attempt.ID,
		ExamTitle:        attempt.Exam.Title,
		StudentName:      attempt.Student.Name,
		Score:            attempt.Score,
		TimeTakenSeconds: attempt.TimeTakenSeconds,
		SubmittedAt:      attempt.SubmittedAt,
		TotalQuestions:   len(attempt.Answers),
	}

	// Groups appear in the order a topic's first mistake was inserted, and
	// answers keep insertion order inside each group.
	groupIndex := make(map[string]int)
	for _, answer := range attempt.Answers {
		if answer.IsCorrect || answer.Question.ID == 0 {
			continue
		}
		view.MistakeCount++

		topicName := NoTopicBucket
		topicLink := ""
		if answer.Question.Topic != nil {
			topicName = answer.Question.Topic.Name
			topicLink = answer.Question.Topic.YoutubeLink
		}

		idx, ok := groupIndex[topicName]
		if !ok {
			idx = len(view.MistakenTopics)
			groupIndex[topicName] = idx
			view.MistakenTopics = append(view.MistakenTopics, TopicGroup{
				Topic:       topicName,
				YoutubeLink: topicLink,
			})
		}

		view.MistakenTopics[idx].Questions = append(view.MistakenTopics[idx].Questions, MistakenAnswer{
			QuestionID:     answer.Question.ID,
			QuestionText:   answer.Question.QuestionText,
			Options:        answer.Question.OptionList(),
			SelectedOption: answer.SelectedOption,
			CorrectOption:  answer.Question.CorrectOption,
			ImageURL:       answer.Question.ImageURL,
			YoutubeLink:    answer.Question.YoutubeLink,
		})
	}

	return view, nil
}
