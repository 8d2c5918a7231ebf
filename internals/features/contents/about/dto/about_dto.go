package dto

import (
	"time"

	"shikshaksangh_backend/internals/features/contents/about/model"
)

type AboutDTO struct {
	AboutID        string    `json:"about_id"`
	AboutSection   string    `json:"about_section"`
	AboutTitle     string    `json:"about_title"`
	AboutContent   string    `json:"about_content"`
	AboutCreatedAt time.Time `json:"about_created_at"`
	AboutUpdatedAt time.Time `json:"about_updated_at"`
}

type UpsertAboutRequest struct {
	AboutSection string `json:"about_section" form:"about_section" validate:"required"`
	AboutTitle   string `json:"about_title" form:"about_title" validate:"required"`
	AboutContent string `json:"about_content" form:"about_content" validate:"required"`
}

func ToAboutDTO(m model.AboutModel) AboutDTO {
	return AboutDTO{
		AboutID:        m.AboutID,
		AboutSection:   m.AboutSection,
		AboutTitle:     m.AboutTitle,
		AboutContent:   m.AboutContent,
		AboutCreatedAt: m.AboutCreatedAt,
		AboutUpdatedAt: m.AboutUpdatedAt,
	}
}
