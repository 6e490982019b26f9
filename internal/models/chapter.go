package models

type Chapter struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"size:255;not null" json:"name"`
	Topics []Topic `gorm:"foreignKey:ChapterID" json:"topics,omitempty"`
}

type Topic struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ChapterID   uint   `gorm:"not null;index" json:"chapter_id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	YoutubeLink string `gorm:"size:500" json:"youtube_link,omitempty"`
}
