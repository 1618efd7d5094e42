package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "bilimcenter_backend/internals/features/assessments/results/dto"
	model "bilimcenter_backend/internals/features/assessments/results/model"
	helper "bilimcenter_backend/internals/helpers"
	helperAuth "bilimcenter_backend/internals/helpers/auth"
)

type ResultController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db, Validate: validator.New()}
}

const resultJoinSelect = `
	test_results.*,
	tests.title AS test_title,
	tests.subject AS subject,
	tests.passing_score AS passing_score,
	(test_results.percentage >= tests.passing_score) AS passed
`

/* =========================================================
   Admin — list tests
   GET /api/a/tests
========================================================= */

func (h *ResultController) ListTests(c *fiber.Ctx) error {
	var tests []model.Test
	if err := h.DB.WithContext(c.UserContext()).Order("created_at DESC").Find(&tests).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list tests")
	}
	return helper.Success(c, "OK", tests)
}

/* =========================================================
   Admin — results for one test
   GET /api/a/tests/:test_id/results
========================================================= */

func (h *ResultController) ListTestResults(c *fiber.Ctx) error {
	testID, err := helperAuth.ParseUUIDParam(c, "test_id")
	if err != nil {
		return err
	}
	return h.listResults(c, "test_results.test_id = ?", testID)
}

/* =========================================================
   Admin — results for one student
   GET /api/a/students/:student_id/results
========================================================= */

func (h *ResultController) ListStudentResults(c *fiber.Ctx) error {
	studentID, err := helperAuth.ParseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}
	return h.listResults(c, "test_results.student_id = ?", studentID)
}

/* =========================================================
   Student — own results
   GET /api/u/results
========================================================= */

func (h *ResultController) ListMyResults(c *fiber.Ctx) error {
	studentID, ok := helperAuth.StudentIDFromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "No student bound to this account")
	}
	return h.listResults(c, "test_results.student_id = ?", studentID)
}

func (h *ResultController) listResults(c *fiber.Ctx, cond string, arg uuid.UUID) error {
	var rows []dto.ResultWithTest
	err := h.DB.WithContext(c.UserContext()).
		Table("test_results").
		Select(resultJoinSelect).
		Joins("JOIN tests ON tests.id = test_results.test_id").
		Where(cond, arg).
		Order("test_results.completed_at DESC").
		Limit(500).
		Scan(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list results")
	}
	return helper.Success(c, "OK", rows)
}

/* =========================================================
   Student — submit a finished attempt
   POST /api/u/results
========================================================= */

func (h *ResultController) SubmitResult(c *fiber.Ctx) error {
	var req dto.SubmitResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// students may only submit for themselves
	if studentID, ok := helperAuth.StudentIDFromLocals(c); ok && studentID != req.StudentID {
		return fiber.NewError(fiber.StatusForbidden, "Cannot submit results for another student")
	}

	result := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&result).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save result")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Result saved", result)
}
