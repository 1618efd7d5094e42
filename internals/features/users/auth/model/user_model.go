package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string     `json:"email" gorm:"column:email;type:citext;not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"column:password_hash;type:text;not null"`
	FullName     string     `json:"full_name" gorm:"column:full_name;type:text;not null"`
	Role         string     `json:"role" gorm:"column:role;type:text;not null;default:'student'"`
	StudentID    *uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;index"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
}

func (User) TableName() string { return "users" }
