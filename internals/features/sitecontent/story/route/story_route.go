package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	storyController "aidjourney_backend/internals/features/sitecontent/story/controller"
)

func StoryPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &storyController.StoryController{DB: db}
	r.Get("/stories", ctl.PublicList)
}

func StoryAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &storyController.StoryController{DB: db}
	g := r.Group("/stories")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
