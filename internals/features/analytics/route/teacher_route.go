package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticscontroller "bodhira_backend/internals/features/analytics/controller"
)

// AnalyticsTeacherRoutes mounts the classroom analytics endpoints.
// Parent router already carries AuthJWT + IsTeacher.
func AnalyticsTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := analyticscontroller.NewAnalyticsController(db)

	g := r.Group("/classrooms/:id/analytics")
	g.Get("/overview", ctrl.Overview)                                  // GET /api/t/classrooms/:id/analytics/overview
	g.Get("/students", ctrl.StudentsOverview)                          // GET /api/t/classrooms/:id/analytics/students
	g.Get("/students/:studentId/history", ctrl.StudentHistory)         // GET /api/t/classrooms/:id/analytics/students/:studentId/history
	g.Get("/students/:studentId/performance", ctrl.StudentPerformance) // GET /api/t/classrooms/:id/analytics/students/:studentId/performance
	g.Get("/class-performance", ctrl.ClassPerformance)                 // GET /api/t/classrooms/:id/analytics/class-performance
}
