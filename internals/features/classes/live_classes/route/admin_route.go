package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtl "deeco_backend/internals/features/classes/live_classes/controller"
)

// Admin routes for live classes. Router must be the guarded /api/a group.
func LiveClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classCtl.NewLiveClassController(db)

	grp := r.Group("/live-classes")
	grp.Get("/list", ctl.List)
	grp.Get("/live-now", ctl.LiveNow)
	grp.Get("/options", ctl.Options)
	grp.Get("/form/defaults", ctl.FormDefaults)
	grp.Get("/:id/form", ctl.GetForm)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
