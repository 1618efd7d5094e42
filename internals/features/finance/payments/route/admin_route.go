package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "bilimcenter_backend/internals/features/finance/payments/controller"
)

/*
Admin routes: payment transactions + summaries.
Mount: PaymentAdminRoutes(app.Group("/api/a"), db)
*/
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	payCtl := paymentController.NewPaymentController(db)
	sumCtl := paymentController.NewSummaryController(db)

	pay := r.Group("/payments")
	pay.Get("/", payCtl.ListPayments)
	pay.Post("/", payCtl.CreatePayment)
	pay.Delete("/:id", payCtl.DeletePayment)

	r.Get("/payment-summaries", sumCtl.BatchSummariesAdmin)
	r.Get("/students/:student_id/payment-summary", sumCtl.StudentSummaryAdmin)
}
