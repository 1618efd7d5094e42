package dto

import (
	"time"

	"github.com/google/uuid"

	model "bilimcenter_backend/internals/features/academics/courses/model"
)

type EnrollCourseRequest struct {
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
	Subject    string    `json:"subject" validate:"required,max=60"`
	MonthlyFee int64     `json:"monthly_fee" validate:"required,gt=0"`
	StartDate  string    `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r EnrollCourseRequest) ToModel() model.StudentCourse {
	start := time.Now()
	if r.StartDate != "" {
		if t, err := time.Parse("2006-01-02", r.StartDate); err == nil {
			start = t
		}
	}
	return model.StudentCourse{
		StudentID:  r.StudentID,
		Subject:    r.Subject,
		MonthlyFee: r.MonthlyFee,
		StartDate:  start,
		Status:     model.CourseStatusActive,
	}
}

type UpdateCourseStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active paused completed"`
}
