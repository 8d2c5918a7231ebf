package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/features/contact/controller"
)

func ContactPublicRoutes(api fiber.Router, db *gorm.DB) {
	contactCtrl := controller.NewContactController(db)

	contact := api.Group("/contact")
	contact.Post("/", contactCtrl.CreateContactMessage)
}
