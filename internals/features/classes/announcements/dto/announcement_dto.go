package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"deeco_backend/internals/crud"
	model "deeco_backend/internals/features/classes/announcements/model"
)

const DefaultPriority = "medium"

// Rows written from the admin screen are always general, active
// announcements; other types come from elsewhere.
const (
	TypeGeneral = "general"
)

// DeriveTargetAudience maps the optional scoping keys to the audience
// label: a single-user target wins, then a class scope, else everyone.
func DeriveTargetAudience(classID, userID *uuid.UUID) string {
	switch {
	case userID != nil:
		return "specific"
	case classID != nil:
		return "class"
	default:
		return "all"
	}
}

/* ===================== REQUESTS ===================== */

type CreateAnnouncementRequest struct {
	ClassID  string `json:"class_id" form:"class_id" validate:"omitempty,uuid"`
	UserID   string `json:"user_id" form:"user_id" validate:"omitempty,uuid"`
	Title    string `json:"title" form:"title" validate:"required,min=2,max=200"`
	Message  string `json:"message" form:"message" validate:"required"`
	Priority string `json:"priority" form:"priority" validate:"omitempty,oneof=high medium low"`
}

func (r CreateAnnouncementRequest) ToModel() (*model.AnnouncementModel, error) {
	classID, err := crud.NullableUUID(r.ClassID)
	if err != nil {
		return nil, fmt.Errorf("class_id: %v", err)
	}
	userID, err := crud.NullableUUID(r.UserID)
	if err != nil {
		return nil, fmt.Errorf("user_id: %v", err)
	}
	priority := r.Priority
	if priority == "" {
		priority = DefaultPriority
	}
	return &model.AnnouncementModel{
		ClassID:        classID,
		UserID:         userID,
		Title:          r.Title,
		Message:        r.Message,
		Priority:       priority,
		Type:           TypeGeneral,
		TargetAudience: DeriveTargetAudience(classID, userID),
		IsActive:       true,
	}, nil
}

/* ===================== UPDATE (partial) ===================== */

type UpdateAnnouncementRequest struct {
	ClassID  *string `json:"class_id" form:"class_id"`
	UserID   *string `json:"user_id" form:"user_id"`
	Title    *string `json:"title" form:"title" validate:"omitempty,min=2,max=200"`
	Message  *string `json:"message" form:"message"`
	Priority *string `json:"priority" form:"priority" validate:"omitempty,oneof=high medium low"`
}

// Changes leaves target_audience to the controller: it depends on the final
// class_id/user_id pair, which may mix the stored row and this draft.
func (r UpdateAnnouncementRequest) Changes() (map[string]any, error) {
	updates := map[string]any{}
	if r.ClassID != nil {
		id, err := crud.NullableUUID(*r.ClassID)
		if err != nil {
			return nil, fmt.Errorf("class_id: %v", err)
		}
		updates["class_id"] = id // nil clears the scope
	}
	if r.UserID != nil {
		id, err := crud.NullableUUID(*r.UserID)
		if err != nil {
			return nil, fmt.Errorf("user_id: %v", err)
		}
		updates["user_id"] = id
	}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Message != nil {
		updates["message"] = *r.Message
	}
	if r.Priority != nil && *r.Priority != "" {
		updates["priority"] = *r.Priority
	}
	return updates, nil
}

/* ===================== EDIT FORM ===================== */

type AnnouncementForm struct {
	ClassID  string `json:"class_id"` // "" = all classes
	UserID   string `json:"user_id"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

func NewAnnouncementForm(m *model.AnnouncementModel) AnnouncementForm {
	f := AnnouncementForm{
		Title:    m.Title,
		Message:  m.Message,
		Priority: m.Priority,
	}
	if m.ClassID != nil {
		f.ClassID = m.ClassID.String()
	}
	if m.UserID != nil {
		f.UserID = m.UserID.String()
	}
	return f
}

func DefaultAnnouncementForm() AnnouncementForm {
	return AnnouncementForm{Priority: DefaultPriority}
}

/* ===================== RESPONSES ===================== */

type AnnouncementResponse struct {
	ID             uuid.UUID  `json:"id"`
	ClassID        *uuid.UUID `json:"class_id,omitempty"`
	ClassTitle     string     `json:"class_title,omitempty"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Priority       string     `json:"priority"`
	TargetAudience string     `json:"target_audience"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func NewAnnouncementResponse(m *model.AnnouncementModel) *AnnouncementResponse {
	if m == nil {
		return nil
	}
	return &AnnouncementResponse{
		ID:             m.ID,
		ClassID:        m.ClassID,
		UserID:         m.UserID,
		Title:          m.Title,
		Message:        m.Message,
		Priority:       m.Priority,
		TargetAudience: m.TargetAudience,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
