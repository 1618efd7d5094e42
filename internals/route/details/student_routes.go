package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementRoute "bilimcenter_backend/internals/features/academics/announcements/route"
	courseRoute "bilimcenter_backend/internals/features/academics/courses/route"
	resultRoute "bilimcenter_backend/internals/features/assessments/results/route"
	paymentRoute "bilimcenter_backend/internals/features/finance/payments/route"
)

// StudentPortalRoutes mounts the dashboard under /api/u (JWT enforced by the
// caller; per-student scoping comes from the token's student_id claim).
func StudentPortalRoutes(r fiber.Router, db *gorm.DB) {
	courseRoute.CourseUserRoutes(r, db)
	resultRoute.ResultUserRoutes(r, db)
	paymentRoute.PaymentUserRoutes(r, db)
	announcementRoute.AnnouncementUserRoutes(r, db)
}
