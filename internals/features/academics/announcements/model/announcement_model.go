package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AnnouncementAudience string

const (
	AudienceAll      AnnouncementAudience = "all"
	AudienceStudents AnnouncementAudience = "students"
	AudienceTeachers AnnouncementAudience = "teachers"
)

type Announcement struct {
	ID       uuid.UUID            `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title    string               `json:"title" gorm:"column:title;type:text;not null"`
	Body     string               `json:"body" gorm:"column:body;type:text;not null"`
	Audience AnnouncementAudience `json:"audience" gorm:"column:audience;type:text;not null;default:'all'"`
	Pinned   bool                 `json:"pinned" gorm:"column:pinned;not null;default:false"`

	// [{"name":"schedule.pdf","url":"..."}]
	Attachments datatypes.JSON `json:"attachments" gorm:"column:attachments;type:jsonb"`

	CreatedBy   *uuid.UUID `json:"created_by" gorm:"column:created_by;type:uuid"`
	PublishedAt time.Time  `json:"published_at" gorm:"column:published_at;type:timestamptz;not null;default:now()"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
}

func (Announcement) TableName() string { return "announcements" }
