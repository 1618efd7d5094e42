package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "bilimcenter_backend/internals/features/reports/export/controller"
)

func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportController.NewReportController(db)

	exports := r.Group("/exports")
	exports.Get("/results", ctl.ExportResults)
	exports.Get("/payments", ctl.ExportPayments)
	exports.Get("/students", ctl.ExportStudents)
}
