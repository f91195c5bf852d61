package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	testcontroller "bodhira_backend/internals/features/tests/controller"
)

// TestTeacherRoutes: test management. Parent carries AuthJWT + IsTeacher.
func TestTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := testcontroller.NewTestController(db)

	g := r.Group("/tests")
	g.Post("/", ctrl.Create)             // POST   /api/t/tests
	g.Get("/", ctrl.ListByClassroom)     // GET    /api/t/tests?classroom_id=
	g.Patch("/:id", ctrl.Patch)          // PATCH  /api/t/tests/:id
	g.Delete("/:id", ctrl.Delete)        // DELETE /api/t/tests/:id
}

// TestUserRoutes: student-side test access. Parent carries AuthJWT.
func TestUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := testcontroller.NewTestController(db)

	g := r.Group("/tests")
	g.Get("/code/:code", ctrl.GetByCode) // GET /api/u/tests/code/:code
}
