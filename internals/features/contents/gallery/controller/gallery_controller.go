package controller

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/configs"
	"shikshaksangh_backend/internals/constants"
	"shikshaksangh_backend/internals/features/contents/gallery/dto"
	"shikshaksangh_backend/internals/features/contents/gallery/model"
	helper "shikshaksangh_backend/internals/helpers"
	"shikshaksangh_backend/internals/helpers/storage"
)

var validateGallery = validator.New()

var gallerySlot = storage.Slot{Folder: constants.FolderGallery, MimeTypes: constants.GalleryMimeTypes}

type GalleryController struct {
	DB *gorm.DB
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{DB: db}
}

// =============================
// ➕ Upload Gallery Photo (stored as resized webp)
// =============================
func (ctrl *GalleryController) CreateGalleryPhoto(c *fiber.Ctx) error {
	var body dto.CreateGalleryPhotoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	fh, err := c.FormFile("photo")
	if err != nil || fh == nil {
		return helper.Error(c, fiber.StatusBadRequest, "A photo is required")
	}

	photo := model.GalleryPhotoModel{
		GalleryPhotoID:    uuid.NewString(),
		GalleryPhotoTitle: body.GalleryPhotoTitle,
	}

	rel, err := storage.SaveImageAsWebp(configs.UploadRoot(), gallerySlot, photo.GalleryPhotoID, fh)
	if err != nil {
		if errors.Is(err, storage.ErrMimeNotAllowed) {
			return helper.Error(c, fiber.StatusBadRequest, "Photo must be a JPEG or PNG")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to store photo")
	}
	photo.GalleryPhotoPath = rel

	if meta, err := json.Marshal(fiber.Map{
		"original_filename": fh.Filename,
		"original_size":     fh.Size,
	}); err == nil {
		photo.GalleryPhotoMeta = meta
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&photo).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create gallery photo")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Gallery photo uploaded", dto.ToGalleryPhotoDTO(photo))
}

// =============================
// 🗑️ Delete Gallery Photo
// =============================
func (ctrl *GalleryController) DeleteGalleryPhoto(c *fiber.Ctx) error {
	if err := ctrl.DB.Delete(&model.GalleryPhotoModel{}, "gallery_photo_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete gallery photo")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 📄 Get All Gallery Photos (public)
// =============================
func (ctrl *GalleryController) GetAllGalleryPhotos(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	var total int64
	if err := ctrl.DB.Model(&model.GalleryPhotoModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count gallery photos")
	}

	var items []model.GalleryPhotoModel
	if err := ctrl.DB.Order("gallery_photo_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve gallery photos")
	}

	out := make([]dto.GalleryPhotoDTO, 0, len(items))
	for _, g := range items {
		out = append(out, dto.ToGalleryPhotoDTO(g))
	}
	return helper.Success(c, "OK", fiber.Map{"items": out, "meta": helper.BuildMeta(total, p)})
}
