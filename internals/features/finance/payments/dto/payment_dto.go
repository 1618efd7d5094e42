package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "bilimcenter_backend/internals/features/finance/payments/model"
)

/* =========================================================
   REQUEST: CreatePaymentTransaction
========================================================= */

type CreatePaymentRequest struct {
	StudentID       uuid.UUID      `json:"student_id" validate:"required"`
	StudentCourseID uuid.UUID      `json:"student_course_id" validate:"required"`
	Amount          int64          `json:"amount" validate:"required,gt=0"`
	PaymentDate     string         `json:"payment_date" validate:"required,datetime=2006-01-02"`
	PaymentMonth    int            `json:"payment_month" validate:"required,min=1,max=12"`
	PaymentYear     int            `json:"payment_year" validate:"required,min=2020,max=2100"`
	PaymentMethod   string         `json:"payment_method" validate:"required,oneof=cash card transfer other"`
	Notes           *string        `json:"notes"`
	Meta            datatypes.JSON `json:"meta"`
}

func (r CreatePaymentRequest) ToModel(createdBy uuid.UUID) model.PaymentTransaction {
	// validated upstream, parse cannot fail here
	date, _ := time.Parse("2006-01-02", r.PaymentDate)
	return model.PaymentTransaction{
		StudentID:       r.StudentID,
		StudentCourseID: r.StudentCourseID,
		Amount:          r.Amount,
		PaymentDate:     date,
		PaymentMonth:    r.PaymentMonth,
		PaymentYear:     r.PaymentYear,
		PaymentMethod:   model.PaymentMethod(r.PaymentMethod),
		Notes:           r.Notes,
		CreatedBy:       &createdBy,
		Meta:            r.Meta,
	}
}

/* =========================================================
   RESPONSE
========================================================= */

type PaymentTransactionResponse struct {
	ID              uuid.UUID `json:"id"`
	StudentID       uuid.UUID `json:"student_id"`
	StudentCourseID uuid.UUID `json:"student_course_id"`
	Amount          int64     `json:"amount"`
	PaymentDate     string    `json:"payment_date"`
	PaymentMonth    int       `json:"payment_month"`
	PaymentYear     int       `json:"payment_year"`
	PaymentMethod   string    `json:"payment_method"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewPaymentTransactionResponse(m model.PaymentTransaction) PaymentTransactionResponse {
	return PaymentTransactionResponse{
		ID:              m.ID,
		StudentID:       m.StudentID,
		StudentCourseID: m.StudentCourseID,
		Amount:          m.Amount,
		PaymentDate:     m.PaymentDate.Format("2006-01-02"),
		PaymentMonth:    m.PaymentMonth,
		PaymentYear:     m.PaymentYear,
		PaymentMethod:   string(m.PaymentMethod),
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
	}
}

func NewPaymentTransactionResponses(ms []model.PaymentTransaction) []PaymentTransactionResponse {
	out := make([]PaymentTransactionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewPaymentTransactionResponse(m))
	}
	return out
}
