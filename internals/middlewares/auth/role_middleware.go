package auth

import (
	"github.com/gofiber/fiber/v2"

	"guruku_backend/internals/constants"
)

// OnlyRoles menolak request kalau role di token tidak termasuk whitelist.
func OnlyRoles(allowed ...string) fiber.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if _, ok := set[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Anda tidak memiliki akses ke resource ini")
		}
		return c.Next()
	}
}

func IsTeacher() fiber.Handler { return OnlyRoles(constants.RoleTeacher) }
func IsStudent() fiber.Handler { return OnlyRoles(constants.RoleStudent) }
