package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/features/contents/about/controller"
)

func AboutAdminRoutes(api fiber.Router, db *gorm.DB) {
	aboutCtrl := controller.NewAboutController(db)

	about := api.Group("/about")
	about.Post("/", aboutCtrl.UpsertAbout)
	about.Delete("/:id", aboutCtrl.DeleteAbout)
}
