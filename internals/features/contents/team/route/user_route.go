package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/features/contents/team/controller"
)

func TeamPublicRoutes(api fiber.Router, db *gorm.DB) {
	teamCtrl := controller.NewTeamMemberController(db)

	team := api.Group("/team")
	team.Get("/", teamCtrl.GetAllTeamMembers)
	team.Get("/province/:province", teamCtrl.GetTeamByProvince)
}
