package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentModel links a profile to an optional live class. Rows are only
// ever created and deleted; there is no update operation.
type EnrollmentModel struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClassID        *uuid.UUID `gorm:"column:class_id;type:uuid" json:"class_id,omitempty"`
	UserID         uuid.UUID  `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	EnrollmentDate time.Time  `gorm:"column:enrollment_date;type:timestamptz;not null;autoCreateTime" json:"enrollment_date"`
}

func (EnrollmentModel) TableName() string { return "class_enrollments" }

func (m *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
