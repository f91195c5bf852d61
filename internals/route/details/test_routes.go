// file: internals/route/details/test_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	TestRoutes "bodhira_backend/internals/features/tests/route"
)

func TestTeacherRoutes(r fiber.Router, db *gorm.DB) {
	TestRoutes.TestTeacherRoutes(r, db)
}

func TestUserRoutes(r fiber.Router, db *gorm.DB) {
	TestRoutes.TestUserRoutes(r, db)
}
