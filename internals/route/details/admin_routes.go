package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementRoute "bilimcenter_backend/internals/features/academics/announcements/route"
	courseRoute "bilimcenter_backend/internals/features/academics/courses/route"
	studentRoute "bilimcenter_backend/internals/features/academics/students/route"
	teacherRoute "bilimcenter_backend/internals/features/academics/teachers/route"
	resultRoute "bilimcenter_backend/internals/features/assessments/results/route"
	paymentRoute "bilimcenter_backend/internals/features/finance/payments/route"
	reportRoute "bilimcenter_backend/internals/features/reports/export/route"
	authRoute "bilimcenter_backend/internals/features/users/auth/route"
)

// AdminRoutes mounts the back-office under /api/a (JWT + admin role enforced
// by the caller).
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.UserAdminRoutes(r, db)
	studentRoute.StudentAdminRoutes(r, db)
	teacherRoute.TeacherAdminRoutes(r, db)
	courseRoute.CourseAdminRoutes(r, db)
	announcementRoute.AnnouncementAdminRoutes(r, db)
	resultRoute.ResultAdminRoutes(r, db)
	paymentRoute.PaymentAdminRoutes(r, db)
	reportRoute.ReportAdminRoutes(r, db)
}
