// file: internals/helpers/token.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var ErrNoUserContext = errors.New("konteks user tidak ditemukan di token")

// GetUserIDFromToken mengambil user_id (uuid) yang sudah ditaruh AuthMiddleware di locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	if raw == "" {
		return uuid.Nil, ErrNoUserContext
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrNoUserContext
	}
	return id, nil
}

// GetRoleFromToken mengambil role dari locals (teacher|student).
func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}
