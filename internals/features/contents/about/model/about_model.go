package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AboutModel struct {
	AboutID        string    `gorm:"column:about_id;primaryKey;type:uuid" json:"about_id"`
	AboutSection   string    `gorm:"column:about_section;type:varchar(100);not null;uniqueIndex" json:"about_section"`
	AboutTitle     string    `gorm:"column:about_title;type:varchar(255);not null" json:"about_title"`
	AboutContent   string    `gorm:"column:about_content;type:text;not null" json:"about_content"`
	AboutCreatedAt time.Time `gorm:"column:about_created_at;autoCreateTime" json:"about_created_at"`
	AboutUpdatedAt time.Time `gorm:"column:about_updated_at;autoUpdateTime" json:"about_updated_at"`
}

func (AboutModel) TableName() string {
	return "about_pages"
}

func (m *AboutModel) BeforeCreate(tx *gorm.DB) error {
	if m.AboutID == "" {
		m.AboutID = uuid.NewString()
	}
	return nil
}
