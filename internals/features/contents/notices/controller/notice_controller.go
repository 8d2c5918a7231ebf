package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/configs"
	"shikshaksangh_backend/internals/constants"
	"shikshaksangh_backend/internals/features/contents/notices/dto"
	"shikshaksangh_backend/internals/features/contents/notices/model"
	helper "shikshaksangh_backend/internals/helpers"
	"shikshaksangh_backend/internals/helpers/storage"
)

var validateNotice = validator.New()

var noticeSlot = storage.Slot{Folder: constants.FolderNotices, MimeTypes: constants.NoticeMimeTypes}

type NoticeController struct {
	DB *gorm.DB
}

func NewNoticeController(db *gorm.DB) *NoticeController {
	return &NoticeController{DB: db}
}

// =============================
// ➕ Create Notice (optional PDF/image attachment)
// =============================
func (ctrl *NoticeController) CreateNotice(c *fiber.Ctx) error {
	var body dto.CreateNoticeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNotice.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	notice := model.NoticeModel{
		NoticeID:       uuid.NewString(),
		NoticeTitle:    body.NoticeTitle,
		NoticeCategory: body.NoticeCategory,
		NoticeContent:  body.NoticeContent,
	}

	if fh, err := c.FormFile("attachment"); err == nil && fh != nil {
		rel, err := storage.SaveUpload(configs.UploadRoot(), noticeSlot, notice.NoticeID, fh)
		if err != nil {
			if errors.Is(err, storage.ErrMimeNotAllowed) {
				return helper.Error(c, fiber.StatusBadRequest, "Notice attachment must be a PDF, JPEG or PNG")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to store attachment")
		}
		notice.NoticeAttachmentPath = &rel
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&notice).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create notice")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Notice created", dto.ToNoticeDTO(notice))
}

// =============================
// 🔄 Update Notice
// =============================
func (ctrl *NoticeController) UpdateNotice(c *fiber.Ctx) error {
	var body dto.UpdateNoticeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNotice.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var notice model.NoticeModel
	if err := ctrl.DB.First(&notice, "notice_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Notice not found")
	}

	notice.NoticeTitle = body.NoticeTitle
	notice.NoticeCategory = body.NoticeCategory
	notice.NoticeContent = body.NoticeContent

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&notice).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update notice")
	}
	return helper.Success(c, "Notice updated", dto.ToNoticeDTO(notice))
}

// =============================
// 🗑️ Delete Notice
// =============================
func (ctrl *NoticeController) DeleteNotice(c *fiber.Ctx) error {
	if err := ctrl.DB.Delete(&model.NoticeModel{}, "notice_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete notice")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 📄 Get All / By Category (public)
// =============================
func (ctrl *NoticeController) GetAllNotices(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.NoticeModel{})
	if cat := c.Query("category"); cat != "" {
		q = q.Where("notice_category = ?", cat)
	}

	var items []model.NoticeModel
	if err := q.Order("notice_created_at DESC").Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve notices")
	}

	out := make([]dto.NoticeDTO, 0, len(items))
	for _, n := range items {
		out = append(out, dto.ToNoticeDTO(n))
	}
	return helper.Success(c, "OK", out)
}

func (ctrl *NoticeController) GetNoticeByID(c *fiber.Ctx) error {
	var notice model.NoticeModel
	if err := ctrl.DB.First(&notice, "notice_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Notice not found")
	}
	return helper.Success(c, "OK", dto.ToNoticeDTO(notice))
}
