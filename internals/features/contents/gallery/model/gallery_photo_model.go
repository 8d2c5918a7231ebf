package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GalleryPhotoModel struct {
	GalleryPhotoID        string         `gorm:"column:gallery_photo_id;primaryKey;type:uuid" json:"gallery_photo_id"`
	GalleryPhotoTitle     string         `gorm:"column:gallery_photo_title;type:varchar(255);not null" json:"gallery_photo_title"`
	GalleryPhotoPath      string         `gorm:"column:gallery_photo_path;type:text;not null" json:"gallery_photo_path"`
	GalleryPhotoMeta      datatypes.JSON `gorm:"column:gallery_photo_meta" json:"gallery_photo_meta,omitempty"`
	GalleryPhotoCreatedAt time.Time      `gorm:"column:gallery_photo_created_at;autoCreateTime" json:"gallery_photo_created_at"`
}

func (GalleryPhotoModel) TableName() string {
	return "gallery_photos"
}

func (m *GalleryPhotoModel) BeforeCreate(tx *gorm.DB) error {
	if m.GalleryPhotoID == "" {
		m.GalleryPhotoID = uuid.NewString()
	}
	return nil
}
