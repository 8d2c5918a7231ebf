package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/features/contents/notices/controller"
)

func NoticePublicRoutes(api fiber.Router, db *gorm.DB) {
	noticeCtrl := controller.NewNoticeController(db)

	notices := api.Group("/notices")
	notices.Get("/", noticeCtrl.GetAllNotices)
	notices.Get("/:id", noticeCtrl.GetNoticeByID)
}
