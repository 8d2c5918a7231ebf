package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactRoute "shikshaksangh_backend/internals/features/contact/route"
	aboutRoute "shikshaksangh_backend/internals/features/contents/about/route"
	downloadRoute "shikshaksangh_backend/internals/features/contents/downloads/route"
	galleryRoute "shikshaksangh_backend/internals/features/contents/gallery/route"
	newsRoute "shikshaksangh_backend/internals/features/contents/news/route"
	noticeRoute "shikshaksangh_backend/internals/features/contents/notices/route"
	teamRoute "shikshaksangh_backend/internals/features/contents/team/route"
	memberRoute "shikshaksangh_backend/internals/features/members/member/route"
)

// AdminRoutes mounts the authenticated admin surface under /api/a.
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	memberRoute.MemberAdminRoutes(api, db)
	newsRoute.NewsAdminRoutes(api, db)
	noticeRoute.NoticeAdminRoutes(api, db)
	downloadRoute.DownloadAdminRoutes(api, db)
	aboutRoute.AboutAdminRoutes(api, db)
	teamRoute.TeamAdminRoutes(api, db)
	galleryRoute.GalleryAdminRoutes(api, db)
	contactRoute.ContactAdminRoutes(api, db)
}
