package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CourseModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"column:title;type:text;not null" json:"title"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	Level       string    `gorm:"column:level;type:text;not null;default:beginner" json:"level"`

	DurationWeeks      *int            `gorm:"column:duration_weeks" json:"duration_weeks,omitempty"`
	ThumbnailURL       *string         `gorm:"column:thumbnail_url;type:text" json:"thumbnail_url,omitempty"`
	EnrollmentDeadline *datatypes.Date `gorm:"column:enrollment_deadline;type:date" json:"enrollment_deadline,omitempty"`
	Price              *float64        `gorm:"column:price;type:numeric" json:"price,omitempty"`
	InstructorName     *string         `gorm:"column:instructor_name;type:text" json:"instructor_name,omitempty"`

	WhatYouLearn  pq.StringArray `gorm:"column:what_you_learn;type:text[]" json:"what_you_learn"`
	Prerequisites pq.StringArray `gorm:"column:prerequisites;type:text[]" json:"prerequisites"`

	IsActive bool `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
