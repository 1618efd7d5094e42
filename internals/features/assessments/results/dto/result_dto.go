package dto

import (
	"time"

	"github.com/google/uuid"

	model "bilimcenter_backend/internals/features/assessments/results/model"
)

type SubmitResultRequest struct {
	TestID           uuid.UUID `json:"test_id" validate:"required"`
	StudentID        uuid.UUID `json:"student_id" validate:"required"`
	Score            int       `json:"score" validate:"min=0"`
	Percentage       float64   `json:"percentage" validate:"min=0,max=100"`
	TimeSpentSeconds int       `json:"time_spent_seconds" validate:"min=0"`
}

func (r SubmitResultRequest) ToModel() model.TestResult {
	now := time.Now()
	return model.TestResult{
		TestID:           r.TestID,
		StudentID:        r.StudentID,
		Score:            r.Score,
		Percentage:       r.Percentage,
		TimeSpentSeconds: r.TimeSpentSeconds,
		CompletedAt:      &now,
	}
}

// ResultWithTest is the list-view shape: attempt + test metadata + pass flag.
type ResultWithTest struct {
	model.TestResult
	TestTitle    string  `json:"test_title"`
	Subject      string  `json:"subject"`
	PassingScore float64 `json:"passing_score"`
	Passed       bool    `json:"passed"`
}
