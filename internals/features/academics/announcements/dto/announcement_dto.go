package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "bilimcenter_backend/internals/features/academics/announcements/model"
)

type CreateAnnouncementRequest struct {
	Title       string         `json:"title" validate:"required,min=3,max=200"`
	Body        string         `json:"body" validate:"required"`
	Audience    string         `json:"audience" validate:"omitempty,oneof=all students teachers"`
	Pinned      bool           `json:"pinned"`
	Attachments datatypes.JSON `json:"attachments"`
}

func (r CreateAnnouncementRequest) ToModel(createdBy uuid.UUID) model.Announcement {
	audience := model.AudienceAll
	if r.Audience != "" {
		audience = model.AnnouncementAudience(r.Audience)
	}
	return model.Announcement{
		Title:       r.Title,
		Body:        r.Body,
		Audience:    audience,
		Pinned:      r.Pinned,
		Attachments: r.Attachments,
		CreatedBy:   &createdBy,
	}
}

type UpdateAnnouncementRequest struct {
	Title       *string        `json:"title" validate:"omitempty,min=3,max=200"`
	Body        *string        `json:"body"`
	Audience    *string        `json:"audience" validate:"omitempty,oneof=all students teachers"`
	Pinned      *bool          `json:"pinned"`
	Attachments datatypes.JSON `json:"attachments"`
}

func (r UpdateAnnouncementRequest) Apply(m *model.Announcement) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Body != nil {
		m.Body = *r.Body
	}
	if r.Audience != nil {
		m.Audience = model.AnnouncementAudience(*r.Audience)
	}
	if r.Pinned != nil {
		m.Pinned = *r.Pinned
	}
	if len(r.Attachments) > 0 {
		m.Attachments = r.Attachments
	}
}
