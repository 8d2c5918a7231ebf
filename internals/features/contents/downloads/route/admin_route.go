package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/features/contents/downloads/controller"
)

func DownloadAdminRoutes(api fiber.Router, db *gorm.DB) {
	downloadCtrl := controller.NewDownloadController(db)

	downloads := api.Group("/downloads")
	downloads.Post("/", downloadCtrl.CreateDownload)
	downloads.Delete("/:id", downloadCtrl.DeleteDownload)
}
