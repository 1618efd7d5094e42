package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "bilimcenter_backend/internals/features/academics/teachers/controller"
)

func TeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := teacherController.NewTeacherController(db)

	teachers := r.Group("/teachers")
	teachers.Get("/", ctl.ListTeachers)
	teachers.Post("/", ctl.CreateTeacher)
	teachers.Patch("/:teacher_id", ctl.UpdateTeacher)
}
