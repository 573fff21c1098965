// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"aidjourney_backend/internals/constants"
)

// AuthJWT validates the Authorization: Bearer access token and stores the
// basic claims in locals. Anything behind it is at least "authenticated".
func AuthJWT(secret string) fiber.Handler {
	secret = strings.TrimSpace(secret)

	return func(c *fiber.Ctx) error {
		if secret == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT secret")
		}

		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		if typ, _ := claims["typ"].(string); typ != "access" {
			return fiber.NewError(fiber.StatusUnauthorized, "Not an access token")
		}
		if exp, ok := claims["exp"].(float64); ok {
			if time.Now().After(time.Unix(int64(exp), 0)) {
				return fiber.NewError(fiber.StatusUnauthorized, "Token expired")
			}
		}

		if sub, _ := claims["sub"].(string); sub != "" {
			c.Locals(constants.LocalsUserID, sub)
		}
		if name, _ := claims["name"].(string); name != "" {
			c.Locals(constants.LocalsUserName, name)
		}
		isStaff, _ := claims["is_staff"].(bool)
		c.Locals(constants.LocalsIsStaff, isStaff)

		return c.Next()
	}
}

// OnlyStaff gates the admin surface: authenticated but unprivileged
// callers get 403, not 401.
func OnlyStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isStaff, _ := c.Locals(constants.LocalsIsStaff).(bool)
		if !isStaff {
			return fiber.NewError(fiber.StatusForbidden, "Staff access required")
		}
		return c.Next()
	}
}

// IsStaff reads the flag set by AuthJWT; false for anonymous callers.
func IsStaff(c *fiber.Ctx) bool {
	isStaff, _ := c.Locals(constants.LocalsIsStaff).(bool)
	return isStaff
}
