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

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/quantalyze/backoffice/internal/auth"
	"github.com/quantalyze/backoffice/internal/config"
	"github.com/quantalyze/backoffice/internal/types"
)

const claimsKey = "adminClaims"

// RequireAdmin rejects any request without a valid bearer token. The check
// runs before any schema or history work: a rejected request touches no
// state at all.
func RequireAdmin(mgr *auth.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := bearerClaims(c, mgr)
		if claims == nil {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Unauthorized",
				Type:    "auth.bearer",
			}
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// Protect gates writes on a resource according to the configured policy.
// Resources listed in ANON_WRITE_RESOURCES pass through without a token,
// but a valid token is still decoded into the context so handlers can gate
// sub-operations (restore) that always require an admin.
func Protect(mgr *auth.Manager, cfg *config.Config, resource string) fiber.Handler {
	if !cfg.AllowsAnonymousWrites(resource) {
		return RequireAdmin(mgr)
	}
	return Identify(mgr)
}

// Identify decodes a bearer token when one is present but never rejects.
// Read handlers use it to widen results (deleted rows, history) for admins
// while staying public.
func Identify(mgr *auth.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims := bearerClaims(c, mgr); claims != nil {
			c.Locals(claimsKey, claims)
		}
		return c.Next()
	}
}

// ClaimsFromCtx returns the decoded admin claims, or nil for an anonymous
// request.
func ClaimsFromCtx(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(claimsKey).(*auth.Claims)
	return claims
}

// bearerClaims parses and verifies the Authorization header. Missing or
// malformed headers and invalid tokens all come back nil.
func bearerClaims(c *fiber.Ctx, mgr *auth.Manager) *auth.Claims {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return nil
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return nil
	}

	claims, err := mgr.Validate(parts[1])
	if err != nil {
		return nil
	}
	return claims
}
