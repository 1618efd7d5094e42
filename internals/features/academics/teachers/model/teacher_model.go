package model

import (
	"time"

	"github.com/google/uuid"
)

type Teacher struct {
	ID       uuid.UUID `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	FullName string    `json:"full_name" gorm:"column:full_name;type:text;not null"`
	Subject  string    `json:"subject" gorm:"column:subject;type:text;not null"`
	Phone    string    `json:"phone" gorm:"column:phone;type:varchar(20)"`
	HiredAt  time.Time `json:"hired_at" gorm:"column:hired_at;type:date;not null;default:now()"`
	IsActive bool      `json:"is_active" gorm:"column:is_active;not null;default:true"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
}

func (Teacher) TableName() string { return "teachers" }
