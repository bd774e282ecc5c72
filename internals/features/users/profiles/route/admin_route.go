package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileCtl "deeco_backend/internals/features/users/profiles/controller"
)

// Admin routes for profiles. The router must already be the guarded
// /api/a group.
func ProfileAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := profileCtl.NewProfileController(db)

	grp := r.Group("/profiles")
	grp.Get("/list", ctl.List)
	grp.Get("/options", ctl.Options)
	grp.Get("/:id", ctl.GetByID)
}
