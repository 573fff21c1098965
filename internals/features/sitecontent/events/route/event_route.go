package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "aidjourney_backend/internals/features/sitecontent/events/controller"
)

// Static segments register before the :id routes so /events/categories is
// never captured as an event id.
func EventPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &eventController.EventController{DB: db}
	events := r.Group("/events")
	events.Get("/categories", ctl.PublicListCategories)
	events.Get("/", ctl.PublicListEvents)
	events.Get("/:id/photos", ctl.PublicListPhotos)
}

func EventAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &eventController.EventController{DB: db}
	events := r.Group("/events")

	cats := events.Group("/categories")
	cats.Get("/", ctl.ListCategories)
	cats.Post("/", ctl.CreateCategory)
	cats.Get("/:id", ctl.GetCategory)
	cats.Put("/:id", ctl.UpdateCategory)
	cats.Patch("/:id", ctl.UpdateCategory)
	cats.Delete("/:id", ctl.DeleteCategory)

	photos := events.Group("/photos")
	photos.Put("/:id", ctl.UpdatePhoto)
	photos.Patch("/:id", ctl.UpdatePhoto)
	photos.Delete("/:id", ctl.DeletePhoto)

	events.Get("/", ctl.ListEvents)
	events.Post("/", ctl.CreateEvent)
	events.Get("/:id", ctl.GetEvent)
	events.Put("/:id", ctl.UpdateEvent)
	events.Patch("/:id", ctl.UpdateEvent)
	events.Delete("/:id", ctl.DeleteEvent)
	events.Get("/:id/photos", ctl.ListPhotos)
	events.Post("/:id/photos", ctl.CreatePhoto)
}
