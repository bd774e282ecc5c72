package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProfileModel rows are created by the auth signup flow; this service only
// ever reads them.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	FirstName *string   `gorm:"column:first_name;type:text" json:"first_name,omitempty"`
	LastName  *string   `gorm:"column:last_name;type:text" json:"last_name,omitempty"`
	Email     *string   `gorm:"column:email;type:text" json:"email,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
}

func (ProfileModel) TableName() string { return "profiles" }

// DisplayName joins first and last name; either side may be NULL.
func (p *ProfileModel) DisplayName() string {
	first, last := "", ""
	if p.FirstName != nil {
		first = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil {
		last = strings.TrimSpace(*p.LastName)
	}
	return strings.TrimSpace(first + " " + last)
}
