package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/features/contents/downloads/controller"
)

func DownloadPublicRoutes(api fiber.Router, db *gorm.DB) {
	downloadCtrl := controller.NewDownloadController(db)

	downloads := api.Group("/downloads")
	downloads.Get("/", downloadCtrl.GetAllDownloads)
}
