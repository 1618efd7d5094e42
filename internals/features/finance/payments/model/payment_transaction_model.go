package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ================================
   ENUM mirror (must match DB)
================================ */

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodOther    PaymentMethod = "other"
)

/* ================================
   MODEL: payment_transactions
================================ */

// PaymentTransaction is one payment event against a course-month. Immutable once
// created; admins may delete a mistaken row. Several transactions may apply to
// the same course-month.
type PaymentTransaction struct {
	ID              uuid.UUID     `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentID       uuid.UUID     `json:"student_id" gorm:"column:student_id;type:uuid;not null;index"`
	StudentCourseID uuid.UUID     `json:"student_course_id" gorm:"column:student_course_id;type:uuid;not null;index"`
	Amount          int64         `json:"amount" gorm:"column:amount;type:bigint;not null;check:amount>0"`
	PaymentDate     time.Time     `json:"payment_date" gorm:"column:payment_date;type:date;not null"`
	PaymentMonth    int           `json:"payment_month" gorm:"column:payment_month;type:int;not null;check:payment_month BETWEEN 1 AND 12"`
	PaymentYear     int           `json:"payment_year" gorm:"column:payment_year;type:int;not null"`
	PaymentMethod   PaymentMethod `json:"payment_method" gorm:"column:payment_method;type:text;not null;default:'cash'"`
	Notes           *string       `json:"notes" gorm:"column:notes;type:text"`
	CreatedBy       *uuid.UUID    `json:"created_by" gorm:"column:created_by;type:uuid"`

	// free-form audit payload (receipt no, till id, ...)
	Meta datatypes.JSON `json:"meta" gorm:"column:meta;type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (PaymentTransaction) TableName() string { return "payment_transactions" }
