package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "aidjourney_backend/internals/features/users/auth/controller"
	"aidjourney_backend/internals/middlewares"
)

// AuthRoutes mounts the token endpoints under /api/auth.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &authController.AuthController{DB: db}
	auth := r.Group("/auth")
	auth.Post("/token", middlewares.LoginRateLimiter(), ctl.Token)
	auth.Post("/token/refresh", ctl.Refresh)
	auth.Post("/google", middlewares.LoginRateLimiter(), ctl.GoogleLogin)
}
