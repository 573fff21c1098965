package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	programController "aidjourney_backend/internals/features/sitecontent/program/controller"
)

// Public read endpoints. /projects is the canonical path; /programs is a
// kept alias for older clients.
func ProgramPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &programController.ProgramController{DB: db}
	r.Get("/projects", ctl.PublicList)
	r.Get("/programs", ctl.PublicList)
}

// Admin CRUD under /api/admin.
func ProgramAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &programController.ProgramController{DB: db}
	for _, prefix := range []string{"/projects", "/programs"} {
		g := r.Group(prefix)
		g.Get("/", ctl.List)
		g.Post("/", ctl.Create)
		g.Get("/:id", ctl.Get)
		g.Put("/:id", ctl.Update)
		g.Patch("/:id", ctl.Update)
		g.Delete("/:id", ctl.Delete)
	}
}
