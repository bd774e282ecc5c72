package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReelModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"column:title;type:text;not null" json:"title"`
	Description *string   `gorm:"column:description;type:text" json:"description,omitempty"`

	ReelURL      string  `gorm:"column:reel_url;type:text;not null" json:"reel_url"`
	ThumbnailURL *string `gorm:"column:thumbnail_url;type:text" json:"thumbnail_url,omitempty"`
	Platform     string  `gorm:"column:platform;type:text;not null" json:"platform"`

	DurationSeconds *int  `gorm:"column:duration_seconds" json:"duration_seconds,omitempty"`
	ViewCount       int64 `gorm:"column:view_count;not null;default:0" json:"view_count"`

	PublishedAt time.Time `gorm:"column:published_at;type:timestamptz;not null" json:"published_at"`
	Tag         string    `gorm:"column:tag;type:text;not null;default:General" json:"tag"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (ReelModel) TableName() string { return "market_reels" }

func (m *ReelModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
