package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bannerController "aidjourney_backend/internals/features/sitecontent/banner/controller"
)

// Public read endpoint.
func BannerPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &bannerController.BannerController{DB: db}
	r.Get("/banner", ctl.PublicList)
}

// Admin CRUD under /api/admin.
func BannerAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &bannerController.BannerController{DB: db}
	banners := r.Group("/banners")
	banners.Get("/", ctl.List)
	banners.Post("/", ctl.Create)
	banners.Get("/:id", ctl.Get)
	banners.Put("/:id", ctl.Update)
	banners.Patch("/:id", ctl.Update)
	banners.Delete("/:id", ctl.Delete)
}
