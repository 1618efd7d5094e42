package model

import (
	"time"

	"github.com/google/uuid"
)

type MonthlyStatus string

const (
	MonthlyStatusPaid    MonthlyStatus = "paid"
	MonthlyStatusPartial MonthlyStatus = "partial"
	MonthlyStatusPending MonthlyStatus = "pending"
	MonthlyStatusOverdue MonthlyStatus = "overdue"
)

// MonthlyPaymentStatus maps the monthly_payment_status view: one row per active
// course per calendar month, recomputed by the DB as transactions land.
// Invariant upstream: paid_amount + remaining_amount == required_amount.
type MonthlyPaymentStatus struct {
	StudentCourseID uuid.UUID     `json:"student_course_id" gorm:"column:student_course_id;type:uuid"`
	Month           int           `json:"month" gorm:"column:month"`
	Year            int           `json:"year" gorm:"column:year"`
	RequiredAmount  int64         `json:"required_amount" gorm:"column:required_amount"`
	PaidAmount      int64         `json:"paid_amount" gorm:"column:paid_amount"`
	RemainingAmount int64         `json:"remaining_amount" gorm:"column:remaining_amount"`
	Status          MonthlyStatus `json:"status" gorm:"column:status"`
	DueDate         time.Time     `json:"due_date" gorm:"column:due_date;type:date"`
}

func (MonthlyPaymentStatus) TableName() string { return "monthly_payment_status" }
