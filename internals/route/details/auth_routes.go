package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "bilimcenter_backend/internals/features/users/auth/route"
)

func AuthRoutes(app fiber.Router, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)
}
