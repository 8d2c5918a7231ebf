package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/features/contact/controller"
)

func ContactAdminRoutes(api fiber.Router, db *gorm.DB) {
	contactCtrl := controller.NewContactController(db)

	contact := api.Group("/contact")
	contact.Get("/", contactCtrl.GetAllContactMessages)
	contact.Delete("/:id", contactCtrl.DeleteContactMessage)
}
