package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	newsController "aidjourney_backend/internals/features/sitecontent/news/controller"
)

func NewsPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &newsController.NewsController{DB: db}
	r.Get("/news", ctl.PublicList)
	r.Get("/news/:slug", ctl.PublicGetBySlug)
}

func NewsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &newsController.NewsController{DB: db}
	g := r.Group("/news")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
