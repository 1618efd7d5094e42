package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bilimcenter_backend/internals/features/academics/announcements/dto"
	model "bilimcenter_backend/internals/features/academics/announcements/model"
	helper "bilimcenter_backend/internals/helpers"
	helperAuth "bilimcenter_backend/internals/helpers/auth"
)

type AnnouncementController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db, Validate: validator.New()}
}

/* =========================================================
   Public/student — pinned first, newest next
   GET /api/u/announcements?audience=
========================================================= */

func (h *AnnouncementController) ListAnnouncements(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "pinned DESC, published_at DESC", nil)

	db := h.DB.WithContext(c.UserContext()).Model(&model.Announcement{})
	if a := c.Query("audience"); a == string(model.AudienceStudents) || a == string(model.AudienceTeachers) {
		db = db.Where("audience IN ?", []string{string(model.AudienceAll), a})
	}

	var rows []model.Announcement
	if err := db.Order(p.Sort).Limit(p.PerPage).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list announcements")
	}
	return helper.Success(c, "OK", rows)
}

/* =========================================================
   Admin — create / update / delete
========================================================= */

func (h *AnnouncementController) CreateAnnouncement(c *fiber.Ctx) error {
	var req dto.CreateAnnouncementRequest
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

	a := req.ToModel(adminID)
	if err := h.DB.WithContext(c.UserContext()).Create(&a).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Announcement created", a)
}

func (h *AnnouncementController) UpdateAnnouncement(c *fiber.Ctx) error {
	id, err := helperAuth.ParseUUIDParam(c, "announcement_id")
	if err != nil {
		return err
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var a model.Announcement
	if err := h.DB.WithContext(c.UserContext()).First(&a, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load announcement")
	}

	req.Apply(&a)
	a.UpdatedAt = time.Now()
	if err := h.DB.WithContext(c.UserContext()).Save(&a).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}
	return helper.Success(c, "Announcement updated", a)
}

func (h *AnnouncementController) DeleteAnnouncement(c *fiber.Ctx) error {
	id, err := helperAuth.ParseUUIDParam(c, "announcement_id")
	if err != nil {
		return err
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&model.Announcement{}, "id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Announcement not found")
	}
	return helper.Success(c, "Announcement deleted", fiber.Map{"id": id})
}
