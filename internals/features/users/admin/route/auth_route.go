package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/features/users/admin/controller"
	"shikshaksangh_backend/internals/middlewares"
	authMiddleware "shikshaksangh_backend/internals/middlewares/auth"
)

func AdminAuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAdminAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/logout", authCtrl.Logout)
	auth.Get("/me", authMiddleware.AuthMiddleware(db), authCtrl.Me)
}
