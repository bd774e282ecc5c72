package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"deeco_backend/internals/configs"
	annRoute "deeco_backend/internals/features/classes/announcements/route"
	enrollRoute "deeco_backend/internals/features/classes/enrollments/route"
	classRoute "deeco_backend/internals/features/classes/live_classes/route"
	noteRoute "deeco_backend/internals/features/classes/notes/route"
	recRoute "deeco_backend/internals/features/classes/recordings/route"
	courseRoute "deeco_backend/internals/features/courses/courses/route"
	dashRoute "deeco_backend/internals/features/home/dashboard/route"
	reelRoute "deeco_backend/internals/features/marketing/reels/route"
	msgRoute "deeco_backend/internals/features/support/messages/route"
	profileRoute "deeco_backend/internals/features/users/profiles/route"
	authmw "deeco_backend/internals/middlewares/auth"
)

// SetupRoutes mounts everything: the bare base routes, the public surface
// the marketing site reads, and the JWT-guarded admin group.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	public := app.Group("/api/public")
	courseRoute.CoursePublicRoutes(public, db)
	reelRoute.ReelPublicRoutes(public, db)
	msgRoute.MessagePublicRoutes(public, db)

	admin := app.Group("/api/a",
		authmw.AuthJWT(authmw.AuthJWTOpts{Secret: configs.JWTSecret, AllowCookieFallback: true}),
		authmw.RequireAdmin(),
	)
	dashRoute.DashboardAdminRoutes(admin, db)
	profileRoute.ProfileAdminRoutes(admin, db)
	classRoute.LiveClassAdminRoutes(admin, db)
	enrollRoute.EnrollmentAdminRoutes(admin, db)
	annRoute.AnnouncementAdminRoutes(admin, db)
	noteRoute.NoteAdminRoutes(admin, db)
	recRoute.RecordingAdminRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	reelRoute.ReelAdminRoutes(admin, db)
	msgRoute.MessageAdminRoutes(admin, db)
}
