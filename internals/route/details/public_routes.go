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

// PublicRoutes mounts every unauthenticated surface under /api/public.
func PublicRoutes(api fiber.Router, db *gorm.DB) {
	newsRoute.NewsPublicRoutes(api, db)
	noticeRoute.NoticePublicRoutes(api, db)
	downloadRoute.DownloadPublicRoutes(api, db)
	aboutRoute.AboutPublicRoutes(api, db)
	teamRoute.TeamPublicRoutes(api, db)
	galleryRoute.GalleryPublicRoutes(api, db)
	contactRoute.ContactPublicRoutes(api, db)
	memberRoute.MemberPublicRoutes(api, db)
}
