package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	impactController "aidjourney_backend/internals/features/sitecontent/impact/controller"
)

func ImpactPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &impactController.ImpactController{DB: db}
	r.Get("/impact", ctl.PublicList)
}

func ImpactAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &impactController.ImpactController{DB: db}
	g := r.Group("/impact")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
