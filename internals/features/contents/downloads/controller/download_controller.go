package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/configs"
	"shikshaksangh_backend/internals/constants"
	"shikshaksangh_backend/internals/features/contents/downloads/dto"
	"shikshaksangh_backend/internals/features/contents/downloads/model"
	helper "shikshaksangh_backend/internals/helpers"
	"shikshaksangh_backend/internals/helpers/storage"
)

var validateDownload = validator.New()

var downloadSlot = storage.Slot{Folder: constants.FolderDownloads, MimeTypes: constants.DownloadMimeTypes}

type DownloadController struct {
	DB *gorm.DB
}

func NewDownloadController(db *gorm.DB) *DownloadController {
	return &DownloadController{DB: db}
}

// =============================
// ➕ Create Download (file required)
// =============================
func (ctrl *DownloadController) CreateDownload(c *fiber.Ctx) error {
	var body dto.CreateDownloadRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDownload.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return helper.Error(c, fiber.StatusBadRequest, "A file is required")
	}

	download := model.DownloadModel{
		DownloadID:       uuid.NewString(),
		DownloadTitle:    body.DownloadTitle,
		DownloadCategory: body.DownloadCategory,
	}

	rel, err := storage.SaveUpload(configs.UploadRoot(), downloadSlot, download.DownloadID, fh)
	if err != nil {
		if errors.Is(err, storage.ErrMimeNotAllowed) {
			return helper.Error(c, fiber.StatusBadRequest, "File type not allowed")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to store file")
	}
	download.DownloadFilePath = rel

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&download).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create download")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Download created", dto.ToDownloadDTO(download))
}

// =============================
// 🗑️ Delete Download
// =============================
func (ctrl *DownloadController) DeleteDownload(c *fiber.Ctx) error {
	if err := ctrl.DB.Delete(&model.DownloadModel{}, "download_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete download")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 📄 Get All Downloads (public)
// =============================
func (ctrl *DownloadController) GetAllDownloads(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.DownloadModel{})
	if cat := c.Query("category"); cat != "" {
		q = q.Where("download_category = ?", cat)
	}

	var items []model.DownloadModel
	if err := q.Order("download_created_at DESC").Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve downloads")
	}

	out := make([]dto.DownloadDTO, 0, len(items))
	for _, d := range items {
		out = append(out, dto.ToDownloadDTO(d))
	}
	return helper.Success(c, "OK", out)
}
