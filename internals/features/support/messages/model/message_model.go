package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message statuses, in workflow order.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusReplied    = "replied"
	StatusClosed     = "closed"
)

// Statuses lists the valid values; admin dashboards count by each.
var Statuses = []string{StatusNew, StatusInProgress, StatusReplied, StatusClosed}

type MessageModel struct {
	ID     uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID *uuid.UUID `gorm:"column:user_id;type:uuid" json:"user_id,omitempty"`

	Name    string `gorm:"column:name;type:text;not null" json:"name"`
	Email   string `gorm:"column:email;type:text;not null" json:"email"`
	Phone   string `gorm:"column:phone;type:text;not null;default:''" json:"phone"`
	Subject string `gorm:"column:subject;type:text;not null" json:"subject"`
	Message string `gorm:"column:message;type:text;not null" json:"message"`

	Status     string  `gorm:"column:status;type:text;not null;default:new" json:"status"`
	AdminNotes *string `gorm:"column:admin_notes;type:text" json:"admin_notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (MessageModel) TableName() string { return "contact_messages" }

func (m *MessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
