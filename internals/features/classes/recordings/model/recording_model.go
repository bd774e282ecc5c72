package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecordingModel struct {
	ID      uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClassID *uuid.UUID `gorm:"column:class_id;type:uuid" json:"class_id,omitempty"`
	UserID  uuid.UUID  `gorm:"column:user_id;type:uuid;not null" json:"user_id"`

	Title    string `gorm:"column:title;type:text;not null" json:"title"`
	VideoURL string `gorm:"column:video_url;type:text;not null" json:"video_url"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (RecordingModel) TableName() string { return "class_recordings" }

func (m *RecordingModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
