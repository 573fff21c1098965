package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactController "aidjourney_backend/internals/features/sitecontent/contact/controller"
	"aidjourney_backend/internals/middlewares"
)

// Public surface: rate-limited message submit plus the info singleton.
func ContactPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &contactController.ContactController{DB: db}
	r.Post("/contact", middlewares.ContactRateLimiter(), ctl.CreateMessage)
	r.Get("/contact-info", ctl.PublicGetInfo)
}

// Admin surface: message inbox (no update path) and the info editor.
func ContactAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &contactController.ContactController{DB: db}

	msgs := r.Group("/contacts")
	msgs.Get("/", ctl.ListMessages)
	msgs.Get("/:id", ctl.GetMessage)
	msgs.Delete("/:id", ctl.DeleteMessage)

	info := r.Group("/contact-info")
	info.Get("/", ctl.GetInfo)
	info.Put("/", ctl.UpdateInfo)
	info.Patch("/", ctl.UpdateInfo)
}
