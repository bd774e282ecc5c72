package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteModel struct {
	ID      uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClassID *uuid.UUID `gorm:"column:class_id;type:uuid" json:"class_id,omitempty"`
	UserID  uuid.UUID  `gorm:"column:user_id;type:uuid;not null" json:"user_id"`

	// UploadedBy is a legacy free-text uploader label; the admin form does
	// not write it.
	UploadedBy *string `gorm:"column:uploaded_by;type:text" json:"uploaded_by,omitempty"`

	Title   string `gorm:"column:title;type:text;not null" json:"title"`
	FileURL string `gorm:"column:file_url;type:text;not null" json:"file_url"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (NoteModel) TableName() string { return "class_notes" }

func (m *NoteModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
