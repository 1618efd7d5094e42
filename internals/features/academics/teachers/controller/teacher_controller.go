package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bilimcenter_backend/internals/features/academics/teachers/dto"
	model "bilimcenter_backend/internals/features/academics/teachers/model"
	helper "bilimcenter_backend/internals/helpers"
	helperAuth "bilimcenter_backend/internals/helpers/auth"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validate: validator.New()}
}

func (h *TeacherController) ListTeachers(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "full_name ASC", map[string]string{
		"hired_desc": "hired_at DESC",
	})

	db := h.DB.WithContext(c.UserContext()).Model(&model.Teacher{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		ilike := "%" + q + "%"
		db = db.Where("full_name ILIKE ? OR subject ILIKE ?", ilike, ilike)
	}
	if s := strings.TrimSpace(c.Query("subject")); s != "" {
		db = db.Where("subject = ?", s)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count teachers")
	}

	var teachers []model.Teacher
	if err := db.Order(p.Sort).Limit(p.PerPage).Offset(p.Offset).Find(&teachers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list teachers")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":    teachers,
		"total":    total,
		"page":     p.Page,
		"per_page": p.PerPage,
	})
}

func (h *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	t := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&t).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher created", t)
}

func (h *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	id, err := helperAuth.ParseUUIDParam(c, "teacher_id")
	if err != nil {
		return err
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var t model.Teacher
	if err := h.DB.WithContext(c.UserContext()).First(&t, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load teacher")
	}

	req.Apply(&t)
	t.UpdatedAt = time.Now()
	if err := h.DB.WithContext(c.UserContext()).Save(&t).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return helper.Success(c, "Teacher updated", t)
}
