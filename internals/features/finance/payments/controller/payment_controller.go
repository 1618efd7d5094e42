package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "bilimcenter_backend/internals/features/finance/payments/dto"
	model "bilimcenter_backend/internals/features/finance/payments/model"
	helper "bilimcenter_backend/internals/helpers"
	helperAuth "bilimcenter_backend/internals/helpers/auth"
)

type PaymentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Validate: validator.New()}
}

/* =========================================================
   Admin — record a payment
   POST /api/a/payments
========================================================= */

func (h *PaymentController) CreatePayment(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	adminID, err := helperAuth.UserIDFromLocals(c)
	if err != nil {
		return err
	}

	tx := req.ToModel(adminID)
	if err := h.DB.WithContext(c.UserContext()).Create(&tx).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record payment")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Payment recorded", dto.NewPaymentTransactionResponse(tx))
}

/* =========================================================
   Admin — delete a mistaken payment row
   DELETE /api/a/payments/:id
========================================================= */

func (h *PaymentController) DeletePayment(c *fiber.Ctx) error {
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&model.PaymentTransaction{}, "id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete payment")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Payment not found")
	}
	return helper.Success(c, "Payment deleted", fiber.Map{"id": id})
}

/* =========================================================
   Admin — list transactions (by student or course)
   GET /api/a/payments?student_id=&course_id=&month=&year=&method=
========================================================= */

func (h *PaymentController) ListPayments(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "payment_date DESC, created_at DESC", map[string]string{
		"date_asc":    "payment_date ASC, created_at ASC",
		"amount_desc": "amount DESC, payment_date DESC",
		"amount_asc":  "amount ASC, payment_date DESC",
	})

	db := h.DB.WithContext(c.UserContext()).Model(&model.PaymentTransaction{})

	if s := strings.TrimSpace(c.Query("student_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid student_id")
		}
		db = db.Where("student_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("course_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid course_id")
		}
		db = db.Where("student_course_id = ?", id)
	}
	if m := c.QueryInt("month"); m >= 1 && m <= 12 {
		db = db.Where("payment_month = ?", m)
	}
	if y := c.QueryInt("year"); y > 0 {
		db = db.Where("payment_year = ?", y)
	}
	if methods := helper.SplitCSV(c.Query("method")); len(methods) > 0 {
		db = db.Where("payment_method IN ?", methods)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count payments")
	}

	var rows []model.PaymentTransaction
	if err := db.Order(p.Sort).Limit(p.PerPage).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list payments")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":    dto.NewPaymentTransactionResponses(rows),
		"total":    total,
		"page":     p.Page,
		"per_page": p.PerPage,
	})
}

/* =========================================================
   Student — own transactions
   GET /api/u/payments
========================================================= */

func (h *PaymentController) ListMyPayments(c *fiber.Ctx) error {
	studentID, ok := helperAuth.StudentIDFromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "No student bound to this account")
	}

	var rows []model.PaymentTransaction
	err := h.DB.WithContext(c.UserContext()).
		Where("student_id = ?", studentID).
		Order("payment_date DESC, created_at DESC").
		Limit(200).
		Find(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list payments")
	}
	return helper.Success(c, "OK", dto.NewPaymentTransactionResponses(rows))
}
