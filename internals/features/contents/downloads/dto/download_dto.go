package dto

import (
	"time"

	"shikshaksangh_backend/internals/features/contents/downloads/model"
)

type DownloadDTO struct {
	DownloadID        string    `json:"download_id"`
	DownloadTitle     string    `json:"download_title"`
	DownloadCategory  string    `json:"download_category"`
	DownloadFilePath  string    `json:"download_file_path"`
	DownloadCreatedAt time.Time `json:"download_created_at"`
	DownloadUpdatedAt time.Time `json:"download_updated_at"`
}

type CreateDownloadRequest struct {
	DownloadTitle    string `json:"download_title" form:"download_title" validate:"required,min=3"`
	DownloadCategory string `json:"download_category" form:"download_category"`
}

func ToDownloadDTO(m model.DownloadModel) DownloadDTO {
	return DownloadDTO{
		DownloadID:        m.DownloadID,
		DownloadTitle:     m.DownloadTitle,
		DownloadCategory:  m.DownloadCategory,
		DownloadFilePath:  m.DownloadFilePath,
		DownloadCreatedAt: m.DownloadCreatedAt,
		DownloadUpdatedAt: m.DownloadUpdatedAt,
	}
}
