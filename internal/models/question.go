package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Option is one entry of a question's ordered option list. Options are stored
// as a jsonb array so their order survives round-trips; correctness is keyed
// by value, not position, so the list may be reordered without regrading.
type Option struct {
	Value string `json:"value"`
}

type Question struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	QuestionSetID uint           `gorm:"not null;index" json:"question_set_id"`
	ChapterID     uint           `gorm:"not null;index" json:"chapter_id"`
	TopicID       *uint          `gorm:"index" json:"topic_id,omitempty"`
	Topic         *Topic         `gorm:"foreignKey:TopicID" json:"topic,omitempty"`
	QuestionText  string         `gorm:"type:text;not null" json:"question_text"`
	Options       datatypes.JSON `gorm:"not null" json:"options"`
	CorrectOption string         `gorm:"size:500;not null" json:"correct_option"`
	YoutubeLink   string         `gorm:"size:500" json:"youtube_link,omitempty"`
	ImageURL      string         `gorm:"size:500" json:"image_url,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// OptionList decodes the jsonb option column. A broken column yields an
// empty list rather than an error; grading treats that as zero matches.
func (q *Question) OptionList() []Option {
	var opts []Option
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil
	}
	return opts
}

// HasOption reports whether value appears verbatim among the option values.
func (q *Question) HasOption(value string) bool {
	for _, o := range q.OptionList() {
		if o.Value == value {
			return true
		}
	}
	return false
}

// MarshalOptions encodes an option list for storage.
func MarshalOptions(opts []Option) (datatypes.JSON, error) {
	raw, err := json.Marshal(opts)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
