package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/features/users/admin/dto"
	"shikshaksangh_backend/internals/features/users/admin/service"
	helper "shikshaksangh_backend/internals/helpers"
)

var validateAuth = validator.New()

type AdminAuthController struct {
	DB *gorm.DB
}

func NewAdminAuthController(db *gorm.DB) *AdminAuthController {
	return &AdminAuthController{DB: db}
}

// =============================
// 🔑 Login — token in JSON + httpOnly cookie
// =============================
func (ctrl *AdminAuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	token, admin, err := service.Login(c.UserContext(), ctrl.DB, body.Email, body.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(12 * time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.Success(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		AdminID:     admin.AdminUserID,
		AdminEmail:  admin.AdminUserEmail,
		AdminRole:   admin.AdminUserRole,
	})
}

// =============================
// 🚪 Logout — clear the cookie
// =============================
func (ctrl *AdminAuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
	return helper.Success(c, "Logged out", nil)
}

// =============================
// 👤 Me — current admin from the verified token
// =============================
func (ctrl *AdminAuthController) Me(c *fiber.Ctx) error {
	return helper.Success(c, "OK", fiber.Map{
		"admin_id":   c.Locals("admin_id"),
		"admin_role": c.Locals("admin_role"),
	})
}
