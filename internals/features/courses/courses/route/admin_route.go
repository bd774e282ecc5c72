package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "deeco_backend/internals/features/courses/courses/controller"
)

func CourseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := courseController.NewCourseController(db)

	r := admin.Group("/courses")
	r.Get("/list", ctl.List)
	r.Get("/form/defaults", ctl.FormDefaults)
	r.Get("/:id/form", ctl.GetForm)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}

// CoursePublicRoutes exposes the read-only catalog.
func CoursePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := courseController.NewCourseController(db)
	public.Get("/courses", ctl.PublicList)
}
