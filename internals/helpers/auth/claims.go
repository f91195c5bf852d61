// file: internals/helpers/auth/claims.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bodhira_backend/internals/constants"
)

// Locals keys hydrated by the JWT middleware
const (
	LocUserID   = "user_id"
	LocUserName = "user_name"
	LocRole     = "user_role"
)

// GetUserID reads the authenticated user id from locals.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user ID")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user ID")
	}
	return id, nil
}

func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocRole).(string)
	return role
}

func IsTeacher(c *fiber.Ctx) bool {
	return GetRole(c) == constants.RoleTeacher || GetRole(c) == constants.RoleAdmin
}

func IsStudent(c *fiber.Ctx) bool {
	return GetRole(c) == constants.RoleStudent
}
