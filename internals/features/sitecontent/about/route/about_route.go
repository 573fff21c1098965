package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aboutController "aidjourney_backend/internals/features/sitecontent/about/controller"
)

// AboutPublicRoutes mounts the read-only singleton projection.
func AboutPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := &aboutController.AboutController{DB: db}
	api.Get("/about", ctl.PublicGet)
}

// AboutAdminRoutes mounts the singleton editor plus its child collections.
func AboutAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := &aboutController.AboutController{DB: db}

	about := admin.Group("/about")
	about.Get("/", ctl.Get)
	about.Put("/", ctl.Update)
	about.Patch("/", ctl.Update)

	wwd := about.Group("/what-we-do")
	wwd.Get("/", ctl.ListWhatWeDo)
	wwd.Post("/", ctl.CreateWhatWeDo)
	wwd.Put("/:id", ctl.UpdateWhatWeDo)
	wwd.Patch("/:id", ctl.UpdateWhatWeDo)
	wwd.Delete("/:id", ctl.DeleteWhatWeDo)

	journey := about.Group("/journey")
	journey.Get("/", ctl.ListJourney)
	journey.Post("/", ctl.CreateJourney)
	journey.Put("/:id", ctl.UpdateJourney)
	journey.Patch("/:id", ctl.UpdateJourney)
	journey.Delete("/:id", ctl.DeleteJourney)
}
