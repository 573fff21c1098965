// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aidjourney_backend/internals/configs"
	authDTO "aidjourney_backend/internals/features/users/auth/dto"
	authModel "aidjourney_backend/internals/features/users/auth/model"
	authService "aidjourney_backend/internals/features/users/auth/service"
	helper "aidjourney_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

// POST /api/auth/token
// Credential login: identifier is the username or email.
func (ctl *AuthController) Token(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Identifier = strings.TrimSpace(req.Identifier)
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var user authModel.UserModel
	if err := ctl.DB.
		Where("user_name = ? OR email = ?", req.Identifier, strings.ToLower(req.Identifier)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}
	if !authService.CheckPassword(user.Password, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	pair, err := authService.IssueTokenPair(ctl.DB, user, c.Get("User-Agent"), c.IP())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	return helper.JsonOK(c, "Login successful", pair)
}

// POST /api/auth/token/refresh
// Rotates the pair: the presented refresh token is invalidated.
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	userID, err := authService.ParseRefreshToken(req.Refresh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	hash := authService.ComputeRefreshHash(req.Refresh)
	var stored authModel.RefreshTokenModel
	if err := ctl.DB.Where("token = ?", hash).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token unknown")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if stored.ExpiresAt.Before(authService.NowUTC()) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token expired")
	}

	var user authModel.UserModel
	if err := ctl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}

	// Rotate: old hash out, new pair in.
	if err := authService.DeleteRefreshTokenByHash(ctl.DB, hash); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to rotate token")
	}
	pair, err := authService.IssueTokenPair(ctl.DB, user, c.Get("User-Agent"), c.IP())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	return helper.JsonOK(c, "Token refreshed", pair)
}

// POST /api/auth/google
// Google ID-token sign-in for existing dashboard accounts (matched by email).
func (ctl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req authDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google token invalid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || claimSet.Email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google token invalid")
	}

	var user authModel.UserModel
	if err := ctl.DB.Where("email = ?", strings.ToLower(claimSet.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusForbidden, "No account for this Google identity")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}

	pair, err := authService.IssueTokenPair(ctl.DB, user, c.Get("User-Agent"), c.IP())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	return helper.JsonOK(c, "Login successful", pair)
}
