package model

import (
	"time"

	"github.com/google/uuid"
)

type Test struct {
	ID              uuid.UUID `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title           string    `json:"title" gorm:"column:title;type:text;not null"`
	Subject         string    `json:"subject" gorm:"column:subject;type:text;not null"`
	PassingScore    float64   `json:"passing_score" gorm:"column:passing_score;type:numeric;not null;default:60"`
	DurationMinutes int       `json:"duration_minutes" gorm:"column:duration_minutes;type:int;not null;default:60"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (Test) TableName() string { return "tests" }
