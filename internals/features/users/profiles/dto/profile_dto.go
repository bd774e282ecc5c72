package dto

import (
	"time"

	"github.com/google/uuid"

	model "deeco_backend/internals/features/users/profiles/model"
)

/* ===================== RESPONSES ===================== */

type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewProfileResponse(m *model.ProfileModel) *ProfileResponse {
	if m == nil {
		return nil
	}
	return &ProfileResponse{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}

// ProfileOption feeds assignment dropdowns: just the id and a display name.
type ProfileOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func NewProfileOption(m *model.ProfileModel) ProfileOption {
	return ProfileOption{ID: m.ID, Name: m.DisplayName()}
}
