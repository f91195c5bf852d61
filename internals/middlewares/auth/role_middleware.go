// file: internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"bodhira_backend/internals/constants"
	helperAuth "bodhira_backend/internals/helpers/auth"
)

// IsTeacher gates teacher-only route groups (classroom management, analytics).
func IsTeacher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsTeacher(c) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher("this resource"))
		}
		return c.Next()
	}
}

// IsStudent gates submission routes.
func IsStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsStudent(c) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorStudent("this resource"))
		}
		return c.Next()
	}
}
