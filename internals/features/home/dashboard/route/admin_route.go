package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashController "deeco_backend/internals/features/home/dashboard/controller"
)

func DashboardAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := dashController.NewDashboardController(db)
	admin.Get("/dashboard", ctl.Overview)
}
