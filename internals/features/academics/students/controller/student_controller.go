package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "bilimcenter_backend/internals/features/academics/students/dto"
	model "bilimcenter_backend/internals/features/academics/students/model"
	summaryService "bilimcenter_backend/internals/features/finance/payments/service"
	helper "bilimcenter_backend/internals/helpers"
	helperAuth "bilimcenter_backend/internals/helpers/auth"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Summary  *summaryService.SummaryService
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:       db,
		Validate: validator.New(),
		Summary:  summaryService.NewSummaryService(db),
	}
}

/* =========================================================
   Admin — list students with payment health
   GET /api/a/students?q=&group=&active=
========================================================= */

func (h *StudentController) ListStudents(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "full_name ASC", map[string]string{
		"enrolled_desc": "enrolled_at DESC",
		"enrolled_asc":  "enrolled_at ASC",
		"name_desc":     "full_name DESC",
	})

	db := h.DB.WithContext(c.UserContext()).Model(&model.Student{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		ilike := "%" + q + "%"
		db = db.Where("full_name ILIKE ? OR phone ILIKE ?", ilike, ilike)
	}
	if g := strings.TrimSpace(c.Query("group")); g != "" {
		db = db.Where("group_name = ?", g)
	}
	if a := strings.TrimSpace(c.Query("active")); a != "" {
		db = db.Where("is_active = ?", a == "true" || a == "1")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var students []model.Student
	if err := db.Order(p.Sort).Limit(p.PerPage).Offset(p.Offset).Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list students")
	}

	ids := make([]uuid.UUID, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.ID)
	}
	summaries := h.Summary.BatchSummaries(c.UserContext(), ids, summaryService.PeriodOf(time.Now()))

	items := make([]dto.StudentWithSummary, 0, len(students))
	for _, s := range students {
		items = append(items, dto.StudentWithSummary{Student: s, PaymentSummary: summaries[s.ID]})
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":    items,
		"total":    total,
		"page":     p.Page,
		"per_page": p.PerPage,
	})
}

/* =========================================================
   Admin — detail with summary
   GET /api/a/students/:student_id
========================================================= */

func (h *StudentController) GetStudent(c *fiber.Ctx) error {
	id, err := helperAuth.ParseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}

	var s model.Student
	if err := h.DB.WithContext(c.UserContext()).First(&s, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	summary, _ := h.Summary.StudentSummary(c.UserContext(), s.ID, summaryService.PeriodOf(time.Now()))
	return helper.Success(c, "OK", dto.StudentWithSummary{Student: s, PaymentSummary: summary})
}

/* =========================================================
   Admin — create / update
========================================================= */

func (h *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	s := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&s).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student created", s)
}

func (h *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := helperAuth.ParseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var s model.Student
	if err := h.DB.WithContext(c.UserContext()).First(&s, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	req.Apply(&s)
	s.UpdatedAt = time.Now()
	if err := h.DB.WithContext(c.UserContext()).Save(&s).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.Success(c, "Student updated", s)
}
