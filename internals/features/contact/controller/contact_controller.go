package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/configs"
	"shikshaksangh_backend/internals/features/contact/dto"
	"shikshaksangh_backend/internals/features/contact/model"
	helper "shikshaksangh_backend/internals/helpers"
	"shikshaksangh_backend/internals/helpers/mailer"
)

var validateContact = validator.New()

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// =============================
// ➕ Submit Contact Message (public) — stored, then forwarded by mail
// =============================
func (ctrl *ContactController) CreateContactMessage(c *fiber.Ctx) error {
	var body dto.CreateContactMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	msg := model.ContactMessageModel{
		ContactMessageName:    body.ContactMessageName,
		ContactMessageEmail:   body.ContactMessageEmail,
		ContactMessageSubject: body.ContactMessageSubject,
		ContactMessageBody:    body.ContactMessageBody,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&msg).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save message")
	}

	if inbox := configs.ContactInbox; inbox != "" {
		mailer.SendAsync(inbox,
			fmt.Sprintf("Contact form: %s", msg.ContactMessageSubject),
			fmt.Sprintf("<p>From: %s &lt;%s&gt;</p><p>%s</p>",
				msg.ContactMessageName, msg.ContactMessageEmail, msg.ContactMessageBody))
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Message received", dto.ToContactMessageDTO(msg))
}

// =============================
// 📄 List / 🗑️ Delete (admin)
// =============================
func (ctrl *ContactController) GetAllContactMessages(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	var total int64
	if err := ctrl.DB.Model(&model.ContactMessageModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count messages")
	}

	var items []model.ContactMessageModel
	if err := ctrl.DB.Order("contact_message_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve messages")
	}

	out := make([]dto.ContactMessageDTO, 0, len(items))
	for _, m := range items {
		out = append(out, dto.ToContactMessageDTO(m))
	}
	return helper.Success(c, "OK", fiber.Map{"items": out, "meta": helper.BuildMeta(total, p)})
}

func (ctrl *ContactController) DeleteContactMessage(c *fiber.Ctx) error {
	if err := ctrl.DB.Delete(&model.ContactMessageModel{}, "contact_message_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete message")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
