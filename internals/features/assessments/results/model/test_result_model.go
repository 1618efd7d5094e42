package model

import (
	"time"

	"github.com/google/uuid"
)

// TestResult is one completed attempt. percentage is stored denormalized so
// result lists and exports do not need the question count.
type TestResult struct {
	ID               uuid.UUID  `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TestID           uuid.UUID  `json:"test_id" gorm:"column:test_id;type:uuid;not null;index"`
	StudentID        uuid.UUID  `json:"student_id" gorm:"column:student_id;type:uuid;not null;index"`
	Score            int        `json:"score" gorm:"column:score;type:int;not null"`
	Percentage       float64    `json:"percentage" gorm:"column:percentage;type:numeric;not null"`
	TimeSpentSeconds int        `json:"time_spent_seconds" gorm:"column:time_spent_seconds;type:int;not null;default:0"`
	CompletedAt      *time.Time `json:"completed_at" gorm:"column:completed_at;type:timestamptz"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (TestResult) TableName() string { return "test_results" }
