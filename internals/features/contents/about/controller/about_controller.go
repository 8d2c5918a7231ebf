package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shikshaksangh_backend/internals/features/contents/about/dto"
	"shikshaksangh_backend/internals/features/contents/about/model"
	helper "shikshaksangh_backend/internals/helpers"
)

var validateAbout = validator.New()

type AboutController struct {
	DB *gorm.DB
}

func NewAboutController(db *gorm.DB) *AboutController {
	return &AboutController{DB: db}
}

// =============================
// ➕ Upsert About section (one row per section key)
// =============================
func (ctrl *AboutController) UpsertAbout(c *fiber.Ctx) error {
	var body dto.UpsertAboutRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAbout.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	about := model.AboutModel{
		AboutSection: body.AboutSection,
		AboutTitle:   body.AboutTitle,
		AboutContent: body.AboutContent,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "about_section"}},
		DoUpdates: clause.AssignmentColumns([]string{"about_title", "about_content", "about_updated_at"}),
	}).Create(&about).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save about section")
	}
	return helper.Success(c, "About section saved", dto.ToAboutDTO(about))
}

// =============================
// 📄 Get All / By Section (public)
// =============================
func (ctrl *AboutController) GetAllAbout(c *fiber.Ctx) error {
	var items []model.AboutModel
	if err := ctrl.DB.Order("about_section ASC").Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve about pages")
	}
	out := make([]dto.AboutDTO, 0, len(items))
	for _, a := range items {
		out = append(out, dto.ToAboutDTO(a))
	}
	return helper.Success(c, "OK", out)
}

func (ctrl *AboutController) GetAboutBySection(c *fiber.Ctx) error {
	var about model.AboutModel
	if err := ctrl.DB.First(&about, "about_section = ?", c.Params("section")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "About section not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve about section")
	}
	return helper.Success(c, "OK", dto.ToAboutDTO(about))
}

// =============================
// 🗑️ Delete About section
// =============================
func (ctrl *AboutController) DeleteAbout(c *fiber.Ctx) error {
	if err := ctrl.DB.Delete(&model.AboutModel{}, "about_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete about section")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
