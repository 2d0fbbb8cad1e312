// auth.go
//
// Back-office data service for the Quantalyze marketing site
// Copyright (c) 2026 Quantalyze Digital <admin@quantalyze.co.in>
//
// This file is part of quantalyze-backoffice.
// quantalyze-backoffice is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// quantalyze-backoffice is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with quantalyze-backoffice.
// If not, see <https://www.gnu.org/licenses/>.

package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/quantalyze/backoffice/internal/auth"
	"github.com/quantalyze/backoffice/internal/config"
	"github.com/quantalyze/backoffice/internal/middleware"
	"github.com/quantalyze/backoffice/internal/services"
	"github.com/quantalyze/backoffice/internal/utils"
	"gorm.io/gorm"
)

// AuthHandler handles admin session routes
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
	Mgr *auth.Manager
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// Login handles POST /api/admin/login
// @Summary Admin login
// @Description Exchanges admin credentials for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return utils.ValidationError(c, "Username and password are required")
	}

	user, err := services.Authenticate(h.DB, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid username or password", "")
		}
		return failed(c, h.Cfg, err, "Login")
	}

	token, err := h.Mgr.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		return failed(c, h.Cfg, err, "Login")
	}

	return utils.SuccessResponse(c, fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// Verify handles GET /api/admin/verify
// @Summary Verify the current bearer token
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)
	if claims == nil {
		return utils.UnauthorizedResponse(c)
	}

	user, err := services.GetAdminUser(h.DB, claims.UserID)
	if err != nil {
		return failed(c, h.Cfg, err, "Admin user")
	}
	return utils.SuccessResponse(c, fiber.Map{
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// ChangePassword handles POST /api/admin/change-password
// @Summary Change the current admin's password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body changePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)
	if claims == nil {
		return utils.UnauthorizedResponse(c)
	}

	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return utils.ValidationError(c, "Current and new passwords are required")
	}

	if err := services.ChangePassword(h.DB, claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Current password is incorrect", "")
		}
		if errors.Is(err, services.ErrWeakPassword) {
			return utils.ValidationError(c, err.Error())
		}
		return failed(c, h.Cfg, err, "Admin user")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Password changed"})
}

// ForgotPassword handles POST /api/admin/forgot-password. There is no mail
// relay in this deployment, so the token lands in the server log for an
// operator to pass on.
// @Summary Request a password reset token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body forgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]interface{}
// @Router /admin/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "Invalid request body")
	}
	if req.Email == "" {
		return utils.ValidationError(c, "An email is required")
	}

	token, err := services.CreateResetToken(h.DB, req.Email)
	if err != nil {
		return failed(c, h.Cfg, err, "Reset token")
	}
	if token != "" {
		log.Printf("Password reset token issued for %s: %s", req.Email, token)
	}

	// Same answer whether or not the account exists.
	return utils.SuccessResponse(c, fiber.Map{
		"message": "If that account exists, a reset token has been issued",
	})
}
