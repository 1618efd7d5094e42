package model

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID          uuid.UUID  `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      *uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;index"`
	FullName    string     `json:"full_name" gorm:"column:full_name;type:text;not null"`
	Phone       string     `json:"phone" gorm:"column:phone;type:varchar(20);not null"`
	ParentPhone string     `json:"parent_phone" gorm:"column:parent_phone;type:varchar(20)"`
	GroupName   string     `json:"group_name" gorm:"column:group_name;type:varchar(50)"`
	EnrolledAt  time.Time  `json:"enrolled_at" gorm:"column:enrolled_at;type:date;not null;default:now()"`
	IsActive    bool       `json:"is_active" gorm:"column:is_active;not null;default:true"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
}

func (Student) TableName() string { return "students" }
