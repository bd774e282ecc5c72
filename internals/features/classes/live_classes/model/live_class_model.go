package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LiveClassModel struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	Title          string    `gorm:"column:title;type:text;not null" json:"title"`
	InstructorName string    `gorm:"column:instructor_name;type:text;not null" json:"instructor_name"`
	MeetingLink    *string   `gorm:"column:meeting_link;type:text" json:"meeting_link,omitempty"`

	ScheduledDatetime time.Time `gorm:"column:scheduled_datetime;type:timestamptz;not null" json:"scheduled_datetime"`
	EndDatetime       time.Time `gorm:"column:end_datetime;type:timestamptz;not null" json:"end_datetime"`
	DurationMinutes   int       `gorm:"column:duration_minutes;not null" json:"duration_minutes"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (LiveClassModel) TableName() string { return "live_classes" }

func (m *LiveClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// IsLiveAt reports whether the class is in session at t. Both bounds are
// inclusive. Never cache the result; t moves.
func (m *LiveClassModel) IsLiveAt(t time.Time) bool {
	return !t.Before(m.ScheduledDatetime) && !t.After(m.EndDatetime)
}
