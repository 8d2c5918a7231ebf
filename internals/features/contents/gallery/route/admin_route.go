package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/features/contents/gallery/controller"
)

func GalleryAdminRoutes(api fiber.Router, db *gorm.DB) {
	galleryCtrl := controller.NewGalleryController(db)

	gallery := api.Group("/gallery")
	gallery.Post("/", galleryCtrl.CreateGalleryPhoto)
	gallery.Delete("/:id", galleryCtrl.DeleteGalleryPhoto)
}
