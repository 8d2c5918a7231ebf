package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/configs"
	"shikshaksangh_backend/internals/constants"
	"shikshaksangh_backend/internals/features/contents/news/dto"
	"shikshaksangh_backend/internals/features/contents/news/model"
	helper "shikshaksangh_backend/internals/helpers"
	"shikshaksangh_backend/internals/helpers/storage"
)

var validateNews = validator.New()

var newsImageSlot = storage.Slot{Folder: constants.FolderNews, MimeTypes: constants.NewsMimeTypes}

type NewsController struct {
	DB *gorm.DB
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{DB: db}
}

// =============================
// ➕ Create News (slug derived from title, numeric suffix on collision)
// =============================
func (ctrl *NewsController) CreateNews(c *fiber.Ctx) error {
	var body dto.CreateNewsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNews.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.EnsureUniqueSlug(c.UserContext(), ctrl.DB, "news", "news_slug", body.NewsTitle, 160)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	news := model.NewsModel{
		NewsID:      uuid.NewString(),
		NewsTitle:   body.NewsTitle,
		NewsSlug:    slug,
		NewsContent: body.NewsContent,
		NewsTags:    body.NewsTags,
	}

	// cover image is written before the single insert, named by the
	// pre-generated id, so a failed upload never leaves a half record
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		rel, err := storage.SaveUpload(configs.UploadRoot(), newsImageSlot, news.NewsID, fh)
		if err != nil {
			if errors.Is(err, storage.ErrMimeNotAllowed) {
				return helper.Error(c, fiber.StatusBadRequest, "News image must be a JPEG or PNG")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to store news image")
		}
		news.NewsImagePath = &rel
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&news).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create news")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "News created", dto.ToNewsDTO(news))
}

// =============================
// 🔄 Update News (title change does not reslug: links stay stable)
// =============================
func (ctrl *NewsController) UpdateNews(c *fiber.Ctx) error {
	var body dto.UpdateNewsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNews.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var news model.NewsModel
	if err := ctrl.DB.First(&news, "news_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "News not found")
	}

	news.NewsTitle = body.NewsTitle
	news.NewsContent = body.NewsContent
	news.NewsTags = body.NewsTags

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&news).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update news")
	}
	return helper.Success(c, "News updated", dto.ToNewsDTO(news))
}

// =============================
// 🗑️ Delete News
// =============================
func (ctrl *NewsController) DeleteNews(c *fiber.Ctx) error {
	if err := ctrl.DB.Delete(&model.NewsModel{}, "news_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete news")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 📄 Get All News (public)
// =============================
func (ctrl *NewsController) GetAllNews(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	var total int64
	if err := ctrl.DB.Model(&model.NewsModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count news")
	}

	var items []model.NewsModel
	if err := ctrl.DB.Order("news_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve news")
	}

	out := make([]dto.NewsDTO, 0, len(items))
	for _, n := range items {
		out = append(out, dto.ToNewsDTO(n))
	}
	return helper.Success(c, "OK", fiber.Map{"items": out, "meta": helper.BuildMeta(total, p)})
}

// =============================
// 🔍 Get News By Slug (public)
// =============================
func (ctrl *NewsController) GetNewsBySlug(c *fiber.Ctx) error {
	var news model.NewsModel
	if err := ctrl.DB.First(&news, "news_slug = ?", c.Params("slug")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "News not found")
	}
	return helper.Success(c, "OK", dto.ToNewsDTO(news))
}
