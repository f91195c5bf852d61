package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultcontroller "bodhira_backend/internals/features/results/controller"
	middlewares "bodhira_backend/internals/middlewares"
)

// ResultUserRoutes: student-side submission + own history. Parent
// carries AuthJWT.
func ResultUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := resultcontroller.NewTestResultController(db)

	g := r.Group("/results")
	g.Post("/", middlewares.SubmitRateLimiter(), ctrl.Submit) // POST /api/u/results
	g.Get("/", ctrl.ListMine)                                 // GET  /api/u/results
}

// ResultTeacherRoutes: per-test result views. Parent carries
// AuthJWT + IsTeacher.
func ResultTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := resultcontroller.NewTestResultController(db)

	g := r.Group("/results")
	g.Get("/test/:testId", ctrl.ListByTest) // GET /api/t/results/test/:testId
}
