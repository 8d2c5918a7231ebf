package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/features/contents/team/controller"
)

func TeamAdminRoutes(api fiber.Router, db *gorm.DB) {
	teamCtrl := controller.NewTeamMemberController(db)

	team := api.Group("/team")
	team.Post("/", teamCtrl.CreateTeamMember)
	team.Delete("/:id", teamCtrl.DeleteTeamMember)
}
