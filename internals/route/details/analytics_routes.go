// file: internals/route/details/analytics_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AnalyticsRoutes "bodhira_backend/internals/features/analytics/route"
)

func AnalyticsTeacherRoutes(r fiber.Router, db *gorm.DB) {
	AnalyticsRoutes.AnalyticsTeacherRoutes(r, db)
}
