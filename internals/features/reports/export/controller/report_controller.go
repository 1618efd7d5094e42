package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "bilimcenter_backend/internals/features/academics/students/model"
	summaryService "bilimcenter_backend/internals/features/finance/payments/service"
	export "bilimcenter_backend/internals/features/reports/export"
	helper "bilimcenter_backend/internals/helpers"
)

type ReportController struct {
	DB      *gorm.DB
	Summary *summaryService.SummaryService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db, Summary: summaryService.NewSummaryService(db)}
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *ReportController) send(c *fiber.Ctx, reportName, sheetName string, columns []export.Column, records []export.Record) error {
	f, err := export.BuildWorkbook(sheetName, columns, records)
	if err != nil {
		if errors.Is(err, export.ErrNoData) {
			return helper.Error(c, fiber.StatusNotFound, "No data to export")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to write report")
	}

	filename := export.Filename(reportName, time.Now())
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

/* =========================================================
   GET /api/a/exports/results?test_id=&student_id=
========================================================= */

type resultExportRow struct {
	StudentName      string
	TestTitle        string
	Subject          string
	Score            int
	Percentage       float64
	PassingScore     float64
	TimeSpentSeconds int
	CompletedAt      *time.Time
}

func (h *ReportController) ExportResults(c *fiber.Ctx) error {
	db := h.DB.WithContext(c.UserContext()).
		Table("test_results").
		Select(`students.full_name AS student_name,
			tests.title AS test_title,
			tests.subject AS subject,
			test_results.score AS score,
			test_results.percentage AS percentage,
			tests.passing_score AS passing_score,
			test_results.time_spent_seconds AS time_spent_seconds,
			test_results.completed_at AS completed_at`).
		Joins("JOIN tests ON tests.id = test_results.test_id").
		Joins("JOIN students ON students.id = test_results.student_id")

	if s := strings.TrimSpace(c.Query("test_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid test_id")
		}
		db = db.Where("test_results.test_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("student_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid student_id")
		}
		db = db.Where("test_results.student_id = ?", id)
	}

	var rows []resultExportRow
	if err := db.Order("test_results.completed_at DESC").Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load results")
	}

	records := make([]export.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, export.ResultRow{
			StudentName:      r.StudentName,
			TestTitle:        r.TestTitle,
			Subject:          r.Subject,
			Score:            r.Score,
			Percentage:       r.Percentage,
			PassingScore:     r.PassingScore,
			TimeSpentSeconds: r.TimeSpentSeconds,
			CompletedAt:      r.CompletedAt,
		}.ToRecord())
	}
	return h.send(c, "results", "Results", export.ResultColumns, records)
}

/* =========================================================
   GET /api/a/exports/payments?month=&year=
========================================================= */

type paymentExportRow struct {
	StudentName   string
	Subject       string
	Amount        int64
	PaymentMonth  int
	PaymentYear   int
	PaymentDate   time.Time
	PaymentMethod string
	Notes         *string
}

func (h *ReportController) ExportPayments(c *fiber.Ctx) error {
	db := h.DB.WithContext(c.UserContext()).
		Table("payment_transactions").
		Select(`students.full_name AS student_name,
			student_courses.subject AS subject,
			payment_transactions.amount AS amount,
			payment_transactions.payment_month AS payment_month,
			payment_transactions.payment_year AS payment_year,
			payment_transactions.payment_date AS payment_date,
			payment_transactions.payment_method AS payment_method,
			payment_transactions.notes AS notes`).
		Joins("JOIN students ON students.id = payment_transactions.student_id").
		Joins("JOIN student_courses ON student_courses.id = payment_transactions.student_course_id")

	if m := c.QueryInt("month"); m >= 1 && m <= 12 {
		db = db.Where("payment_transactions.payment_month = ?", m)
	}
	if y := c.QueryInt("year"); y > 0 {
		db = db.Where("payment_transactions.payment_year = ?", y)
	}

	var rows []paymentExportRow
	if err := db.Order("payment_transactions.payment_date DESC").Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load payments")
	}

	records := make([]export.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, export.PaymentRow{
			StudentName:   r.StudentName,
			Subject:       r.Subject,
			Amount:        r.Amount,
			PaymentMonth:  r.PaymentMonth,
			PaymentYear:   r.PaymentYear,
			PaymentDate:   r.PaymentDate,
			PaymentMethod: r.PaymentMethod,
			Notes:         r.Notes,
		}.ToRecord())
	}
	return h.send(c, "payments", "Payments", export.PaymentColumns, records)
}

/* =========================================================
   GET /api/a/exports/students?active=
========================================================= */

func (h *ReportController) ExportStudents(c *fiber.Ctx) error {
	db := h.DB.WithContext(c.UserContext()).Model(&studentModel.Student{})
	if a := strings.TrimSpace(c.Query("active")); a != "" {
		db = db.Where("is_active = ?", a == "true" || a == "1")
	}

	var students []studentModel.Student
	if err := db.Order("full_name ASC").Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load students")
	}

	ids := make([]uuid.UUID, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.ID)
	}
	summaries := h.Summary.BatchSummaries(c.UserContext(), ids, summaryService.PeriodOf(time.Now()))

	records := make([]export.Record, 0, len(students))
	for _, s := range students {
		sum := summaries[s.ID]
		records = append(records, export.StudentRow{
			FullName:      s.FullName,
			Phone:         s.Phone,
			ParentPhone:   s.ParentPhone,
			GroupName:     s.GroupName,
			EnrolledAt:    s.EnrolledAt,
			TotalCourses:  sum.TotalCourses,
			TotalOverdue:  sum.TotalOverdue,
			PaymentStatus: string(sum.Status),
		}.ToRecord())
	}
	return h.send(c, "students", "Students", export.StudentColumns, records)
}
