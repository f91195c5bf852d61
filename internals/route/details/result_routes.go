// file: internals/route/details/result_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ResultRoutes "bodhira_backend/internals/features/results/route"
)

func ResultUserRoutes(r fiber.Router, db *gorm.DB) {
	ResultRoutes.ResultUserRoutes(r, db)
}

func ResultTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ResultRoutes.ResultTeacherRoutes(r, db)
}
