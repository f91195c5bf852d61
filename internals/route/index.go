// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "bodhira_backend/internals/middlewares/auth"
	routeDetails "bodhira_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== GROUPS =====================

	// PRIVATE (any authenticated user)
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// TEACHER (auth + role check)
	log.Println("[INFO] Setting up TEACHER group (Auth + RoleCheck)...")
	teacher := app.Group("/api/t",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authMiddleware.IsTeacher(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Classroom routes...")
	routeDetails.ClassroomUserRoutes(user, db)
	routeDetails.ClassroomTeacherRoutes(teacher, db)

	log.Println("[INFO] Mounting Test routes...")
	routeDetails.TestUserRoutes(user, db)
	routeDetails.TestTeacherRoutes(teacher, db)

	log.Println("[INFO] Mounting Result routes...")
	routeDetails.ResultUserRoutes(user, db)
	routeDetails.ResultTeacherRoutes(teacher, db)

	log.Println("[INFO] Mounting Analytics routes...")
	routeDetails.AnalyticsTeacherRoutes(teacher, db)
}
