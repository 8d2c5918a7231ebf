package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type NewsModel struct {
	NewsID      string         `gorm:"column:news_id;primaryKey;type:uuid" json:"news_id"`
	NewsTitle   string         `gorm:"column:news_title;type:varchar(255);not null" json:"news_title"`
	NewsSlug    string         `gorm:"column:news_slug;type:varchar(180);not null;uniqueIndex" json:"news_slug"`
	NewsContent string         `gorm:"column:news_content;type:text;not null" json:"news_content"`
	NewsImagePath *string      `gorm:"column:news_image_path;type:text" json:"news_image_path,omitempty"`
	NewsTags    pq.StringArray `gorm:"column:news_tags;type:text[]" json:"news_tags"`
	NewsCreatedAt time.Time    `gorm:"column:news_created_at;autoCreateTime" json:"news_created_at"`
	NewsUpdatedAt time.Time    `gorm:"column:news_updated_at;autoUpdateTime" json:"news_updated_at"`
}

func (NewsModel) TableName() string {
	return "news"
}

func (m *NewsModel) BeforeCreate(tx *gorm.DB) error {
	if m.NewsID == "" {
		m.NewsID = uuid.NewString()
	}
	return nil
}
