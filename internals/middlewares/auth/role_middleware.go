package auth

import (
	"github.com/gofiber/fiber/v2"

	"shikshaksangh_backend/internals/constants"
)

// RequireAdmin gates a route group to admin roles.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("admin_role").(string)
		for _, r := range constants.AdminRoles {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Admin role required")
	}
}
