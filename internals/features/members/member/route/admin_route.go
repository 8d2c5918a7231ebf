package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	exportController "shikshaksangh_backend/internals/features/members/export/controller"
	"shikshaksangh_backend/internals/features/members/member/controller"
)

// Admin surface: list/inspect applications, approve/reject, CSV export.
func MemberAdminRoutes(api fiber.Router, db *gorm.DB) {
	memberCtrl := controller.NewMemberController(db)
	exportCtrl := exportController.NewMemberExportController(db)

	members := api.Group("/members")
	members.Get("/", memberCtrl.ListMembers)
	members.Get("/export", exportCtrl.ExportCSV)
	members.Get("/:id", memberCtrl.GetMember)
	members.Put("/:id", memberCtrl.UpdateMember)
	members.Post("/:id/approve", memberCtrl.ApproveMember)
	members.Post("/:id/reject", memberCtrl.RejectMember)
}
