package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recController "deeco_backend/internals/features/classes/recordings/controller"
)

func RecordingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := recController.NewRecordingController(db)

	r := admin.Group("/recordings")
	r.Get("/list", ctl.List)
	r.Get("/:id/form", ctl.GetForm)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
