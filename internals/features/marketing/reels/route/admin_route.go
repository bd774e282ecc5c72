package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reelController "deeco_backend/internals/features/marketing/reels/controller"
)

func ReelAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := reelController.NewReelController(db)

	r := admin.Group("/reels")
	r.Get("/list", ctl.List)
	r.Get("/form/defaults", ctl.FormDefaults)
	r.Get("/:id/form", ctl.GetForm)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}

// ReelPublicRoutes exposes the read-only active feed.
func ReelPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := reelController.NewReelController(db)
	public.Get("/reels", ctl.PublicList)
}
