package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/features/contents/notices/controller"
)

func NoticeAdminRoutes(api fiber.Router, db *gorm.DB) {
	noticeCtrl := controller.NewNoticeController(db)

	notices := api.Group("/notices")
	notices.Post("/", noticeCtrl.CreateNotice)
	notices.Put("/:id", noticeCtrl.UpdateNotice)
	notices.Delete("/:id", noticeCtrl.DeleteNotice)
}
