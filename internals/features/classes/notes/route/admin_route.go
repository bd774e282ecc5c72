package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	noteController "deeco_backend/internals/features/classes/notes/controller"
)

func NoteAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := noteController.NewNoteController(db)

	r := admin.Group("/notes")
	r.Get("/list", ctl.List)
	r.Get("/:id/form", ctl.GetForm)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
