package dto

import (
	"time"

	model "bilimcenter_backend/internals/features/academics/students/model"
	summaryService "bilimcenter_backend/internals/features/finance/payments/service"
)

type CreateStudentRequest struct {
	FullName    string `json:"full_name" validate:"required,min=3,max=120"`
	Phone       string `json:"phone" validate:"required,e164"`
	ParentPhone string `json:"parent_phone" validate:"omitempty,e164"`
	GroupName   string `json:"group_name" validate:"omitempty,max=50"`
	EnrolledAt  string `json:"enrolled_at" validate:"omitempty,datetime=2006-01-02"`
}

func (r CreateStudentRequest) ToModel() model.Student {
	enrolled := time.Now()
	if r.EnrolledAt != "" {
		if t, err := time.Parse("2006-01-02", r.EnrolledAt); err == nil {
			enrolled = t
		}
	}
	return model.Student{
		FullName:    r.FullName,
		Phone:       r.Phone,
		ParentPhone: r.ParentPhone,
		GroupName:   r.GroupName,
		EnrolledAt:  enrolled,
		IsActive:    true,
	}
}

type UpdateStudentRequest struct {
	FullName    *string `json:"full_name" validate:"omitempty,min=3,max=120"`
	Phone       *string `json:"phone" validate:"omitempty,e164"`
	ParentPhone *string `json:"parent_phone" validate:"omitempty,e164"`
	GroupName   *string `json:"group_name" validate:"omitempty,max=50"`
	IsActive    *bool   `json:"is_active"`
}

func (r UpdateStudentRequest) Apply(m *model.Student) {
	if r.FullName != nil {
		m.FullName = *r.FullName
	}
	if r.Phone != nil {
		m.Phone = *r.Phone
	}
	if r.ParentPhone != nil {
		m.ParentPhone = *r.ParentPhone
	}
	if r.GroupName != nil {
		m.GroupName = *r.GroupName
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

// StudentWithSummary is the admin list-view shape: student row + current-month
// payment health.
type StudentWithSummary struct {
	model.Student
	PaymentSummary summaryService.StudentPaymentSummary `json:"payment_summary"`
}
