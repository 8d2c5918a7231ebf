package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DownloadModel struct {
	DownloadID        string    `gorm:"column:download_id;primaryKey;type:uuid" json:"download_id"`
	DownloadTitle     string    `gorm:"column:download_title;type:varchar(255);not null" json:"download_title"`
	DownloadCategory  string    `gorm:"column:download_category;type:varchar(100);index" json:"download_category"`
	DownloadFilePath  string    `gorm:"column:download_file_path;type:text;not null" json:"download_file_path"`
	DownloadCreatedAt time.Time `gorm:"column:download_created_at;autoCreateTime" json:"download_created_at"`
	DownloadUpdatedAt time.Time `gorm:"column:download_updated_at;autoUpdateTime" json:"download_updated_at"`
}

func (DownloadModel) TableName() string {
	return "downloads"
}

func (m *DownloadModel) BeforeCreate(tx *gorm.DB) error {
	if m.DownloadID == "" {
		m.DownloadID = uuid.NewString()
	}
	return nil
}
