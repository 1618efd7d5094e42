package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultController "bilimcenter_backend/internals/features/assessments/results/controller"
)

func ResultAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resultController.NewResultController(db)

	r.Get("/tests", ctl.ListTests)
	r.Get("/tests/:test_id/results", ctl.ListTestResults)
	r.Get("/students/:student_id/results", ctl.ListStudentResults)
}

func ResultUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resultController.NewResultController(db)

	r.Get("/results", ctl.ListMyResults)
	r.Post("/results", ctl.SubmitResult)
}
