package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bilimcenter_backend/internals/features/academics/courses/dto"
	model "bilimcenter_backend/internals/features/academics/courses/model"
	helper "bilimcenter_backend/internals/helpers"
	helperAuth "bilimcenter_backend/internals/helpers/auth"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validate: validator.New()}
}

/* =========================================================
   Admin — enroll a student into a course
   POST /api/a/courses
========================================================= */

func (h *CourseController) EnrollCourse(c *fiber.Ctx) error {
	var req dto.EnrollCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	course := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&course).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to enroll course")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course enrolled", course)
}

/* =========================================================
   Admin — list a student's courses
   GET /api/a/students/:student_id/courses?status=
========================================================= */

func (h *CourseController) ListStudentCourses(c *fiber.Ctx) error {
	studentID, err := helperAuth.ParseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}

	db := h.DB.WithContext(c.UserContext()).Where("student_id = ?", studentID)
	if statuses := helper.SplitCSV(c.Query("status")); len(statuses) > 0 {
		db = db.Where("status IN ?", statuses)
	}

	var courses []model.StudentCourse
	if err := db.Order("start_date DESC").Find(&courses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list courses")
	}
	return helper.Success(c, "OK", courses)
}

/* =========================================================
   Admin — change course lifecycle status
   PATCH /api/a/courses/:course_id/status

   paused/completed stamps end_date; moving back to active clears it.
========================================================= */

func (h *CourseController) UpdateCourseStatus(c *fiber.Ctx) error {
	courseID, err := helperAuth.ParseUUIDParam(c, "course_id")
	if err != nil {
		return err
	}

	var req dto.UpdateCourseStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.StudentCourse
	if err := h.DB.WithContext(c.UserContext()).First(&course, "id = ?", courseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load course")
	}

	course.Status = model.StudentCourseStatus(req.Status)
	switch course.Status {
	case model.CourseStatusPaused, model.CourseStatusCompleted:
		now := time.Now()
		course.EndDate = &now
	default:
		course.EndDate = nil
	}
	course.UpdatedAt = time.Now()

	if err := h.DB.WithContext(c.UserContext()).Save(&course).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update course status")
	}
	return helper.Success(c, "Course status updated", course)
}

/* =========================================================
   Student — own courses
   GET /api/u/courses
========================================================= */

func (h *CourseController) ListMyCourses(c *fiber.Ctx) error {
	studentID, ok := helperAuth.StudentIDFromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "No student bound to this account")
	}

	var courses []model.StudentCourse
	err := h.DB.WithContext(c.UserContext()).
		Where("student_id = ?", studentID).
		Order("start_date DESC").
		Find(&courses).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list courses")
	}
	return helper.Success(c, "OK", courses)
}
