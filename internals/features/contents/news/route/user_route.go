package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/features/contents/news/controller"
)

func NewsPublicRoutes(api fiber.Router, db *gorm.DB) {
	newsCtrl := controller.NewNewsController(db)

	news := api.Group("/news")
	news.Get("/", newsCtrl.GetAllNews)
	news.Get("/:slug", newsCtrl.GetNewsBySlug)
}
