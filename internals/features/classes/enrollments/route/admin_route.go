package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollController "deeco_backend/internals/features/classes/enrollments/controller"
)

// EnrollmentAdminRoutes mounts the enrollment endpoints. Enrollments are
// created and deleted, never edited, so no PUT is exposed.
func EnrollmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := enrollController.NewEnrollmentController(db)

	r := admin.Group("/enrollments")
	r.Get("/list", ctl.List)
	r.Get("/eligible-users", ctl.EligibleUsers)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Delete("/:id", ctl.Delete)
}
