package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bilimcenter_backend/internals/configs"
	"bilimcenter_backend/internals/constants"
	authMiddleware "bilimcenter_backend/internals/middlewares/auth"
	routeDetails "bilimcenter_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	secret := configs.JWTSecret

	// ===================== STUDENT PORTAL =====================
	log.Println("[INFO] Setting up STUDENT group...")
	student := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              secret,
			AllowCookieFallback: true,
		}),
	)
	routeDetails.StudentPortalRoutes(student, db)

	// ===================== ADMIN BACK-OFFICE =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              secret,
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRoles(constants.RoleAdmin),
	)
	routeDetails.AdminRoutes(admin, db)
}
