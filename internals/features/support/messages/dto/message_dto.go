package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"deeco_backend/internals/crud"
	model "deeco_backend/internals/features/support/messages/model"
)

/* ===================== REQUESTS ===================== */

// CreateMessageRequest arrives from the public contact form; messages always
// start in the "new" status.
type CreateMessageRequest struct {
	UserID  string `json:"user_id" form:"user_id" validate:"omitempty,uuid"`
	Name    string `json:"name" form:"name" validate:"required,min=2,max=120"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,max=30"`
	Subject string `json:"subject" form:"subject" validate:"required,min=2,max=200"`
	Message string `json:"message" form:"message" validate:"required"`
}

func (r CreateMessageRequest) ToModel() (*model.MessageModel, error) {
	userID, err := crud.NullableUUID(r.UserID)
	if err != nil {
		return nil, fmt.Errorf("user_id: %v", err)
	}
	return &model.MessageModel{
		UserID:  userID,
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Subject: strings.TrimSpace(r.Subject),
		Message: r.Message,
		Status:  model.StatusNew,
	}, nil
}

// UpdateStatusRequest moves a message through the workflow.
type UpdateStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required,oneof=new in_progress replied closed"`
}

// UpdateNotesRequest persists the admin's free-text notes. An empty string
// clears them (stores NULL), matching the notes field blanking out.
type UpdateNotesRequest struct {
	AdminNotes string `json:"admin_notes" form:"admin_notes"`
}

/* ===================== RESPONSES ===================== */

type MessageResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	Status     string     `json:"status"`
	AdminNotes *string    `json:"admin_notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewMessageResponse(m *model.MessageModel) *MessageResponse {
	if m == nil {
		return nil
	}
	return &MessageResponse{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Subject:    m.Subject,
		Message:    m.Message,
		Status:     m.Status,
		AdminNotes: m.AdminNotes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
