package dto

import (
	"time"

	"shikshaksangh_backend/internals/features/contents/news/model"
)

type NewsDTO struct {
	NewsID        string    `json:"news_id"`
	NewsTitle     string    `json:"news_title"`
	NewsSlug      string    `json:"news_slug"`
	NewsContent   string    `json:"news_content"`
	NewsImagePath *string   `json:"news_image_path,omitempty"`
	NewsTags      []string  `json:"news_tags"`
	NewsCreatedAt time.Time `json:"news_created_at"`
	NewsUpdatedAt time.Time `json:"news_updated_at"`
}

type CreateNewsRequest struct {
	NewsTitle   string   `json:"news_title" form:"news_title" validate:"required,min=3"`
	NewsContent string   `json:"news_content" form:"news_content" validate:"required"`
	NewsTags    []string `json:"news_tags" form:"news_tags"`
}

type UpdateNewsRequest struct {
	NewsTitle   string   `json:"news_title" form:"news_title" validate:"required,min=3"`
	NewsContent string   `json:"news_content" form:"news_content" validate:"required"`
	NewsTags    []string `json:"news_tags" form:"news_tags"`
}

func ToNewsDTO(m model.NewsModel) NewsDTO {
	return NewsDTO{
		NewsID:        m.NewsID,
		NewsTitle:     m.NewsTitle,
		NewsSlug:      m.NewsSlug,
		NewsContent:   m.NewsContent,
		NewsImagePath: m.NewsImagePath,
		NewsTags:      m.NewsTags,
		NewsCreatedAt: m.NewsCreatedAt,
		NewsUpdatedAt: m.NewsUpdatedAt,
	}
}
