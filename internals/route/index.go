// internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aidjourney_backend/internals/configs"
	aboutRoute "aidjourney_backend/internals/features/sitecontent/about/route"
	bannerRoute "aidjourney_backend/internals/features/sitecontent/banner/route"
	contactRoute "aidjourney_backend/internals/features/sitecontent/contact/route"
	eventRoute "aidjourney_backend/internals/features/sitecontent/events/route"
	impactRoute "aidjourney_backend/internals/features/sitecontent/impact/route"
	newsRoute "aidjourney_backend/internals/features/sitecontent/news/route"
	programRoute "aidjourney_backend/internals/features/sitecontent/program/route"
	storyRoute "aidjourney_backend/internals/features/sitecontent/story/route"
	authRoute "aidjourney_backend/internals/features/users/auth/route"
	authMiddleware "aidjourney_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes mounts everything: base/health, token endpoints, the anonymous
// read surface under /api, and the staff-gated surface under /api/admin.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up auth routes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up public routes...")
	bannerRoute.BannerPublicRoutes(api, db)
	aboutRoute.AboutPublicRoutes(api, db)
	programRoute.ProgramPublicRoutes(api, db)
	impactRoute.ImpactPublicRoutes(api, db)
	storyRoute.StoryPublicRoutes(api, db)
	newsRoute.NewsPublicRoutes(api, db)
	contactRoute.ContactPublicRoutes(api, db)
	eventRoute.EventPublicRoutes(api, db)

	log.Println("[INFO] Setting up admin routes...")
	admin := api.Group("/admin",
		authMiddleware.AuthJWT(configs.JWTSecret),
		authMiddleware.OnlyStaff(),
	)
	bannerRoute.BannerAdminRoutes(admin, db)
	aboutRoute.AboutAdminRoutes(admin, db)
	programRoute.ProgramAdminRoutes(admin, db)
	impactRoute.ImpactAdminRoutes(admin, db)
	storyRoute.StoryAdminRoutes(admin, db)
	newsRoute.NewsAdminRoutes(admin, db)
	contactRoute.ContactAdminRoutes(admin, db)
	eventRoute.EventAdminRoutes(admin, db)
}
