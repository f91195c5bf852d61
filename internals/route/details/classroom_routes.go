// file: internals/route/details/classroom_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ClassroomRoutes "bodhira_backend/internals/features/classrooms/route"
)

func ClassroomTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ClassroomRoutes.ClassroomTeacherRoutes(r, db)
}

func ClassroomUserRoutes(r fiber.Router, db *gorm.DB) {
	ClassroomRoutes.ClassroomUserRoutes(r, db)
}
