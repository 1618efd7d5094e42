package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "bilimcenter_backend/internals/features/academics/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)

	students := r.Group("/students")
	students.Get("/", ctl.ListStudents)
	students.Post("/", ctl.CreateStudent)
	students.Get("/:student_id", ctl.GetStudent)
	students.Patch("/:student_id", ctl.UpdateStudent)
}
