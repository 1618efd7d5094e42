package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "bilimcenter_backend/internals/features/finance/payments/controller"
)

/*
Student routes: own transactions + dashboard summary.
Mount: PaymentUserRoutes(app.Group("/api/u"), db)
*/
func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	payCtl := paymentController.NewPaymentController(db)
	sumCtl := paymentController.NewSummaryController(db)

	r.Get("/payments", payCtl.ListMyPayments)
	r.Get("/payment-summary", sumCtl.MySummary)
}
