package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	msgController "deeco_backend/internals/features/support/messages/controller"
	"deeco_backend/internals/middlewares"
)

func MessageAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := msgController.NewMessageController(db)

	r := admin.Group("/messages")
	r.Get("/list", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Patch("/:id/status", ctl.UpdateStatus)
	r.Patch("/:id/notes", ctl.UpdateNotes)
	r.Delete("/:id", ctl.Delete)
}

// MessagePublicRoutes mounts the contact form endpoint with its own strict
// rate limit.
func MessagePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := msgController.NewMessageController(db)
	public.Post("/contact", middlewares.ContactFormRateLimiter(), ctl.Create)
}
