package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/strideapp/stride/internal/models"
)

const (
	userIDHeader   = "X-User-Id"
	contextUserKey = "current_user"
)

// RequireUser trusts the user id the upstream auth gateway installs on every
// request and provisions the profile row on first sight. Session handling
// itself lives entirely upstream.
func (handler *Handler) RequireUser(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Get(userIDHeader))
	if raw == "" {
		return apiError(c, fiber.StatusUnauthorized, "missing user identity")
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return apiError(c, fiber.StatusUnauthorized, "invalid user identity")
	}

	user, err := handler.users.EnsureByID(uint(parsed))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load user")
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
