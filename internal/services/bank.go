package services

import (
	"fmt"

	"github.com/elham715/Exam-System/internal/models"

	"gorm.io/gorm"
)

// QuestionBankService manages the admin-curated pool: question sets,
// chapters, topics and the questions themselves.
type QuestionBankService struct {
	db *gorm.DB
}

func NewQuestionBankService(db *gorm.DB) *QuestionBankService {
	return &QuestionBankService{db: db}
}

func (s *QuestionBankService) CreateQuestionSet(name string) (*models.QuestionSet, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: question set name is required", ErrValidation)
	}
	set := models.QuestionSet{Name: name}
	if err := s.db.Create(&set).Error; err != nil {
		return nil, err
	}
	return &set, nil
}

func (s *QuestionBankService) ListQuestionSets() ([]models.QuestionSet, error) {
	var sets []models.QuestionSet
	if err := s.db.Order("created_at DESC").Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (s *QuestionBankService) GetQuestionSet(setID uint) (*models.QuestionSet, error) {
	var set models.QuestionSet
	err := s.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Questions.Topic").
		First(&set, setID).Error
	if err != nil {
		return nil, fmt.Errorf("%w: question set %d", ErrNotFound, setID)
	}
	return &set, nil
}

func (s *QuestionBankService) DeleteQuestionSet(setID uint) error {
	result := s.db.Delete(&models.QuestionSet{}, setID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: question set %d", ErrNotFound, setID)
	}
	return s.db.Where("question_set_id = ?", setID).Delete(&models.Question{}).Error
}

func (s *QuestionBankService) CreateChapter(name string) (*models.Chapter, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: chapter name is required", ErrValidation)
	}
	chapter := models.Chapter{Name: name}
	if err := s.db.Create(&chapter).Error; err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (s *QuestionBankService) ListChapters() ([]models.Chapter, error) {
	var chapters []models.Chapter
	if err := s.db.Order("name ASC").Find(&chapters).Error; err != nil {
		return nil, err
	}
	return chapters, nil
}

func (s *QuestionBankService) CreateTopic(chapterID uint, name, youtubeLink string) (*models.Topic, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: topic name is required", ErrValidation)
	}
	var chapter models.Chapter
	if err := s.db.First(&chapter, chapterID).Error; err != nil {
		return nil, fmt.Errorf("%w: chapter %d", ErrNotFound, chapterID)
	}

	topic := models.Topic{
		ChapterID:   chapterID,
		Name:        name,
		YoutubeLink: youtubeLink,
	}
	if err := s.db.Create(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (s *QuestionBankService) ListTopics(chapterID uint) ([]models.Topic, error) {
	var topics []models.Topic
	if err := s.db.Where("chapter_id = ?", chapterID).Order("name ASC").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (s *QuestionBankService) UpdateTopicLink(topicID uint, youtubeLink string) (*models.Topic, error) {
	var topic models.Topic
	if err := s.db.First(&topic, topicID).Error; err != nil {
		return nil, fmt.Errorf("%w: topic %d", ErrNotFound, topicID)
	}
	topic.YoutubeLink = youtubeLink
	if err := s.db.Save(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

type OptionInput struct {
	Value     string `json:"value"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionInput struct {
	QuestionText string        `json:"question_text"`
	Options      []OptionInput `json:"options"`
	ChapterID    uint          `json:"chapter_id"`
	TopicID      *uint         `json:"topic_id"`
	YoutubeLink  string        `json:"youtube_link"`
	ImageURL     string        `json:"image_url"`
}

// AddQuestion validates and stores a new question in a set. Exactly one
// option must be marked correct; the stored correct_option is that option's
// value, so the list may later be reordered without breaking grading.
func (s *QuestionBankService) AddQuestion(setID uint, input QuestionInput) (*models.Question, error) {
	var set models.QuestionSet
	if err := s.db.First(&set, setID).Error; err != nil {
		return nil, fmt.Errorf("%w: question set %d", ErrNotFound, setID)
	}

	if input.QuestionText == "" {
		return nil, fmt.Errorf("%w: question text is required", ErrValidation)
	}
	if len(input.Options) < 2 {
		return nil, fmt.Errorf("%w: at least two options are required", ErrValidation)
	}

	correctOption := ""
	correctCount := 0
	opts := make([]models.Option, 0, len(input.Options))
	for _, o := range input.Options {
		if o.Value == "" {
			return nil, fmt.Errorf("%w: option values must not be empty", ErrValidation)
		}
		if o.IsCorrect {
			correctOption = o.Value
			correctCount++
		}
		opts = append(opts, models.Option{Value: o.Value})
	}
	if correctCount != 1 {
		return nil, fmt.Errorf("%w: exactly one option must be marked as correct", ErrValidation)
	}

	if input.TopicID != nil {
		var topic models.Topic
		if err := s.db.First(&topic, *input.TopicID).Error; err != nil {
			return nil, fmt.Errorf("%w: topic %d", ErrNotFound, *input.TopicID)
		}
	}

	raw, err := models.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	question := models.Question{
		QuestionSetID: setID,
		ChapterID:     input.ChapterID,
		TopicID:       input.TopicID,
		QuestionText:  input.QuestionText,
		Options:       raw,
		CorrectOption: correctOption,
		YoutubeLink:   input.YoutubeLink,
		ImageURL:      input.ImageURL,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}

	s.db.Preload("Topic").First(&question, question.ID)
	return &question, nil
}

func (s *QuestionBankService) DeleteQuestion(questionID uint) error {
	result := s.db.Delete(&models.Question{}, questionID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: question %d", ErrNotFound, questionID)
	}
	return nil
}
