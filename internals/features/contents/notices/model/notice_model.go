package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoticeModel struct {
	NoticeID             string    `gorm:"column:notice_id;primaryKey;type:uuid" json:"notice_id"`
	NoticeTitle          string    `gorm:"column:notice_title;type:varchar(255);not null" json:"notice_title"`
	NoticeCategory       string    `gorm:"column:notice_category;type:varchar(100);not null;index" json:"notice_category"`
	NoticeContent        string    `gorm:"column:notice_content;type:text" json:"notice_content"`
	NoticeAttachmentPath *string   `gorm:"column:notice_attachment_path;type:text" json:"notice_attachment_path,omitempty"`
	NoticeCreatedAt      time.Time `gorm:"column:notice_created_at;autoCreateTime" json:"notice_created_at"`
	NoticeUpdatedAt      time.Time `gorm:"column:notice_updated_at;autoUpdateTime" json:"notice_updated_at"`
}

func (NoticeModel) TableName() string {
	return "notices"
}

func (m *NoticeModel) BeforeCreate(tx *gorm.DB) error {
	if m.NoticeID == "" {
		m.NoticeID = uuid.NewString()
	}
	return nil
}
