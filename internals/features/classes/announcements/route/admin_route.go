package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annController "deeco_backend/internals/features/classes/announcements/controller"
)

func AnnouncementAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := annController.NewAnnouncementController(db)

	r := admin.Group("/announcements")
	r.Get("/list", ctl.List)
	r.Get("/form/defaults", ctl.FormDefaults)
	r.Get("/:id/form", ctl.GetForm)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
