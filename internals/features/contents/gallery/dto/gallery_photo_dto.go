package dto

import (
	"time"

	"shikshaksangh_backend/internals/features/contents/gallery/model"
)

type GalleryPhotoDTO struct {
	GalleryPhotoID        string    `json:"gallery_photo_id"`
	GalleryPhotoTitle     string    `json:"gallery_photo_title"`
	GalleryPhotoPath      string    `json:"gallery_photo_path"`
	GalleryPhotoCreatedAt time.Time `json:"gallery_photo_created_at"`
}

type CreateGalleryPhotoRequest struct {
	GalleryPhotoTitle string `json:"gallery_photo_title" form:"gallery_photo_title" validate:"required"`
}

func ToGalleryPhotoDTO(m model.GalleryPhotoModel) GalleryPhotoDTO {
	return GalleryPhotoDTO{
		GalleryPhotoID:        m.GalleryPhotoID,
		GalleryPhotoTitle:     m.GalleryPhotoTitle,
		GalleryPhotoPath:      m.GalleryPhotoPath,
		GalleryPhotoCreatedAt: m.GalleryPhotoCreatedAt,
	}
}
