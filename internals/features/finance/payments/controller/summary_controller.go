package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	service "bilimcenter_backend/internals/features/finance/payments/service"
	helper "bilimcenter_backend/internals/helpers"
	helperAuth "bilimcenter_backend/internals/helpers/auth"
)

type SummaryController struct {
	Svc *service.SummaryService
}

func NewSummaryController(db *gorm.DB) *SummaryController {
	return &SummaryController{Svc: service.NewSummaryService(db)}
}

// periodFromQuery lets admins pull historic months; defaults to the current one.
func periodFromQuery(c *fiber.Ctx) service.Period {
	p := service.PeriodOf(time.Now())
	if m := c.QueryInt("month"); m >= 1 && m <= 12 {
		p.Month = m
	}
	if y := c.QueryInt("year"); y >= 2020 && y <= 2100 {
		p.Year = y
	}
	return p
}

/* =========================================================
   Admin — single student summary
   GET /api/a/students/:student_id/payment-summary
========================================================= */

func (h *SummaryController) StudentSummaryAdmin(c *fiber.Ctx) error {
	studentID, err := helperAuth.ParseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}

	// fetch failures degrade to a no_courses summary on purpose; the outcome
	// stays internal (logged by the service)
	summary, _ := h.Svc.StudentSummary(c.UserContext(), studentID, periodFromQuery(c))
	return helper.Success(c, "OK", summary)
}

/* =========================================================
   Admin — batch summaries for list views
   GET /api/a/payment-summaries?student_ids=a,b,c
========================================================= */

func (h *SummaryController) BatchSummariesAdmin(c *fiber.Ctx) error {
	raw := helper.SplitCSV(c.Query("student_ids"))
	if len(raw) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "student_ids is required")
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid student id: "+s)
		}
		ids = append(ids, id)
	}

	summaries := h.Svc.BatchSummaries(c.UserContext(), ids, periodFromQuery(c))
	return helper.Success(c, "OK", summaries)
}

/* =========================================================
   Student — own summary for the dashboard
   GET /api/u/payment-summary
========================================================= */

func (h *SummaryController) MySummary(c *fiber.Ctx) error {
	studentID, ok := helperAuth.StudentIDFromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "No student bound to this account")
	}

	summary, _ := h.Svc.StudentSummary(c.UserContext(), studentID, service.PeriodOf(time.Now()))
	return helper.Success(c, "OK", summary)
}
