package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementController "bilimcenter_backend/internals/features/academics/announcements/controller"
)

func AnnouncementAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := announcementController.NewAnnouncementController(db)

	ann := r.Group("/announcements")
	ann.Post("/", ctl.CreateAnnouncement)
	ann.Patch("/:announcement_id", ctl.UpdateAnnouncement)
	ann.Delete("/:announcement_id", ctl.DeleteAnnouncement)
}

func AnnouncementUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := announcementController.NewAnnouncementController(db)

	r.Get("/announcements", ctl.ListAnnouncements)
}
