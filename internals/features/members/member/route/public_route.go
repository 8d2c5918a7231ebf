package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/features/members/member/controller"
	"shikshaksangh_backend/internals/middlewares"
)

// Public surface: the registration form POST.
func MemberPublicRoutes(api fiber.Router, db *gorm.DB) {
	memberCtrl := controller.NewMemberController(db)

	members := api.Group("/members")
	members.Post("/register", middlewares.RegisterRateLimiter(), memberCtrl.RegisterMember)
}
