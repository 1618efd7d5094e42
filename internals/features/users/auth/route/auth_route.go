package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bilimcenter_backend/internals/configs"
	authController "bilimcenter_backend/internals/features/users/auth/controller"
	"bilimcenter_backend/internals/middlewares"
	authMiddleware "bilimcenter_backend/internals/middlewares/auth"
)

func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/logout", ctl.Logout)
	auth.Get("/me",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		ctl.Me,
	)
}

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	r.Post("/users", ctl.RegisterUser)
}
