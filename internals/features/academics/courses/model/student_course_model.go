package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentCourseStatus string

const (
	CourseStatusActive    StudentCourseStatus = "active"
	CourseStatusPaused    StudentCourseStatus = "paused"
	CourseStatusCompleted StudentCourseStatus = "completed"
)

// StudentCourse is one enrollment of a student into a subject with a monthly fee.
// Rows are never deleted; pausing/completing stamps end_date.
type StudentCourse struct {
	ID         uuid.UUID           `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentID  uuid.UUID           `json:"student_id" gorm:"column:student_id;type:uuid;not null;index"`
	Subject    string              `json:"subject" gorm:"column:subject;type:text;not null"`
	MonthlyFee int64               `json:"monthly_fee" gorm:"column:monthly_fee;type:bigint;not null;check:monthly_fee>=0"`
	StartDate  time.Time           `json:"start_date" gorm:"column:start_date;type:date;not null"`
	EndDate    *time.Time          `json:"end_date" gorm:"column:end_date;type:date"`
	Status     StudentCourseStatus `json:"status" gorm:"column:status;type:text;not null;default:'active'"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
}

func (StudentCourse) TableName() string { return "student_courses" }
