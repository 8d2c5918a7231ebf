package dto

import (
	"time"

	"shikshaksangh_backend/internals/features/contents/notices/model"
)

type NoticeDTO struct {
	NoticeID             string    `json:"notice_id"`
	NoticeTitle          string    `json:"notice_title"`
	NoticeCategory       string    `json:"notice_category"`
	NoticeContent        string    `json:"notice_content"`
	NoticeAttachmentPath *string   `json:"notice_attachment_path,omitempty"`
	NoticeCreatedAt      time.Time `json:"notice_created_at"`
	NoticeUpdatedAt      time.Time `json:"notice_updated_at"`
}

type CreateNoticeRequest struct {
	NoticeTitle    string `json:"notice_title" form:"notice_title" validate:"required,min=3"`
	NoticeCategory string `json:"notice_category" form:"notice_category" validate:"required"`
	NoticeContent  string `json:"notice_content" form:"notice_content"`
}

type UpdateNoticeRequest struct {
	NoticeTitle    string `json:"notice_title" form:"notice_title" validate:"required,min=3"`
	NoticeCategory string `json:"notice_category" form:"notice_category" validate:"required"`
	NoticeContent  string `json:"notice_content" form:"notice_content"`
}

func ToNoticeDTO(m model.NoticeModel) NoticeDTO {
	return NoticeDTO{
		NoticeID:             m.NoticeID,
		NoticeTitle:          m.NoticeTitle,
		NoticeCategory:       m.NoticeCategory,
		NoticeContent:        m.NoticeContent,
		NoticeAttachmentPath: m.NoticeAttachmentPath,
		NoticeCreatedAt:      m.NoticeCreatedAt,
		NoticeUpdatedAt:      m.NoticeUpdatedAt,
	}
}
