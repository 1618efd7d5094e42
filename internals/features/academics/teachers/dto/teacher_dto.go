package dto

import (
	"time"

	model "bilimcenter_backend/internals/features/academics/teachers/model"
)

type CreateTeacherRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=120"`
	Subject  string `json:"subject" validate:"required,max=60"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
	HiredAt  string `json:"hired_at" validate:"omitempty,datetime=2006-01-02"`
}

func (r CreateTeacherRequest) ToModel() model.Teacher {
	hired := time.Now()
	if r.HiredAt != "" {
		if t, err := time.Parse("2006-01-02", r.HiredAt); err == nil {
			hired = t
		}
	}
	return model.Teacher{
		FullName: r.FullName,
		Subject:  r.Subject,
		Phone:    r.Phone,
		HiredAt:  hired,
		IsActive: true,
	}
}

type UpdateTeacherRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=3,max=120"`
	Subject  *string `json:"subject" validate:"omitempty,max=60"`
	Phone    *string `json:"phone" validate:"omitempty,e164"`
	IsActive *bool   `json:"is_active"`
}

func (r UpdateTeacherRequest) Apply(m *model.Teacher) {
	if r.FullName != nil {
		m.FullName = *r.FullName
	}
	if r.Subject != nil {
		m.Subject = *r.Subject
	}
	if r.Phone != nil {
		m.Phone = *r.Phone
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}
