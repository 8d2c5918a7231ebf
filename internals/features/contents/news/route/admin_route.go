package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/features/contents/news/controller"
)

func NewsAdminRoutes(api fiber.Router, db *gorm.DB) {
	newsCtrl := controller.NewNewsController(db)

	news := api.Group("/news")
	news.Post("/", newsCtrl.CreateNews)
	news.Put("/:id", newsCtrl.UpdateNews)
	news.Delete("/:id", newsCtrl.DeleteNews)
}
