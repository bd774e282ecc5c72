package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementModel struct {
	ID      uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClassID *uuid.UUID `gorm:"column:class_id;type:uuid" json:"class_id,omitempty"`
	UserID  *uuid.UUID `gorm:"column:user_id;type:uuid" json:"user_id,omitempty"`

	Title    string `gorm:"column:title;type:text;not null" json:"title"`
	Message  string `gorm:"column:message;type:text;not null" json:"message"`
	Priority string `gorm:"column:priority;type:text;not null;default:medium" json:"priority"`

	// Type is always "general" and IsActive always true for rows written
	// here; both columns exist for other producers.
	Type           string `gorm:"column:type;type:text;not null;default:general" json:"type"`
	TargetAudience string `gorm:"column:target_audience;type:text;not null" json:"target_audience"`
	IsActive       bool   `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (AnnouncementModel) TableName() string { return "class_announcements" }

func (m *AnnouncementModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
