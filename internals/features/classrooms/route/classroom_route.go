package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomcontroller "bodhira_backend/internals/features/classrooms/controller"
)

// ClassroomTeacherRoutes: classroom management. Parent router carries
// AuthJWT + IsTeacher.
func ClassroomTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classroomcontroller.NewClassroomController(db)

	g := r.Group("/classrooms")
	g.Post("/", ctrl.Create)            // POST   /api/t/classrooms
	g.Get("/", ctrl.List)               // GET    /api/t/classrooms
	g.Get("/:id", ctrl.GetByID)         // GET    /api/t/classrooms/:id
	g.Patch("/:id", ctrl.Patch)         // PATCH  /api/t/classrooms/:id
	g.Delete("/:id", ctrl.Delete)       // DELETE /api/t/classrooms/:id
	g.Get("/:id/students", ctrl.Roster) // GET    /api/t/classrooms/:id/students
}

// ClassroomUserRoutes: student-side enrollment. Parent carries AuthJWT.
func ClassroomUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classroomcontroller.NewClassroomController(db)

	g := r.Group("/classrooms")
	g.Post("/join", ctrl.Join) // POST /api/u/classrooms/join
}
