package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "bilimcenter_backend/internals/features/academics/courses/controller"
)

func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := courseController.NewCourseController(db)

	r.Post("/courses", ctl.EnrollCourse)
	r.Patch("/courses/:course_id/status", ctl.UpdateCourseStatus)
	r.Get("/students/:student_id/courses", ctl.ListStudentCourses)
}

func CourseUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := courseController.NewCourseController(db)

	r.Get("/courses", ctl.ListMyCourses)
}
