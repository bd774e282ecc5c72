package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"deeco_backend/internals/crud"
	model "deeco_backend/internals/features/classes/notes/model"
)

/* ===================== REQUESTS ===================== */

// CreateNoteRequest: a note always has an owner and a file; the class link
// is optional ("" stores NULL).
type CreateNoteRequest struct {
	ClassID string `json:"class_id" form:"class_id" validate:"omitempty,uuid"`
	UserID  string `json:"user_id" form:"user_id" validate:"required,uuid"`
	Title   string `json:"title" form:"title" validate:"required,min=2,max=200"`
	FileURL string `json:"file_url" form:"file_url" validate:"required,url"`
}

func (r CreateNoteRequest) ToModel() (*model.NoteModel, error) {
	userID, err := uuid.Parse(strings.TrimSpace(r.UserID))
	if err != nil {
		return nil, fmt.Errorf("user_id: invalid uuid")
	}
	classID, err := crud.NullableUUID(r.ClassID)
	if err != nil {
		return nil, fmt.Errorf("class_id: %v", err)
	}
	return &model.NoteModel{
		ClassID: classID,
		UserID:  userID,
		Title:   strings.TrimSpace(r.Title),
		FileURL: strings.TrimSpace(r.FileURL),
	}, nil
}

/* ===================== UPDATE (partial) ===================== */

type UpdateNoteRequest struct {
	ClassID *string `json:"class_id" form:"class_id"`
	UserID  *string `json:"user_id" form:"user_id" validate:"omitempty,uuid"`
	Title   *string `json:"title" form:"title" validate:"omitempty,min=2,max=200"`
	FileURL *string `json:"file_url" form:"file_url" validate:"omitempty,url"`
}

func (r UpdateNoteRequest) Changes() (map[string]any, error) {
	updates := map[string]any{}
	if r.ClassID != nil {
		id, err := crud.NullableUUID(*r.ClassID)
		if err != nil {
			return nil, fmt.Errorf("class_id: %v", err)
		}
		updates["class_id"] = id
	}
	if r.UserID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*r.UserID))
		if err != nil {
			return nil, fmt.Errorf("user_id: invalid uuid")
		}
		updates["user_id"] = id
	}
	if r.Title != nil {
		updates["title"] = strings.TrimSpace(*r.Title)
	}
	if r.FileURL != nil {
		updates["file_url"] = strings.TrimSpace(*r.FileURL)
	}
	return updates, nil
}

/* ===================== EDIT FORM ===================== */

type NoteForm struct {
	ClassID string `json:"class_id"`
	UserID  string `json:"user_id"`
	Title   string `json:"title"`
	FileURL string `json:"file_url"`
}

func NewNoteForm(m *model.NoteModel) NoteForm {
	f := NoteForm{
		UserID:  m.UserID.String(),
		Title:   m.Title,
		FileURL: m.FileURL,
	}
	if m.ClassID != nil {
		f.ClassID = m.ClassID.String()
	}
	return f
}

/* ===================== RESPONSES ===================== */

type NoteResponse struct {
	ID         uuid.UUID  `json:"id"`
	ClassID    *uuid.UUID `json:"class_id,omitempty"`
	ClassTitle string     `json:"class_title,omitempty"`
	UserID     uuid.UUID  `json:"user_id"`
	UserName   string     `json:"user_name,omitempty"`
	UploadedBy *string    `json:"uploaded_by,omitempty"`
	Title      string     `json:"title"`
	FileURL    string     `json:"file_url"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewNoteResponse(m *model.NoteModel) *NoteResponse {
	if m == nil {
		return nil
	}
	return &NoteResponse{
		ID:         m.ID,
		ClassID:    m.ClassID,
		UserID:     m.UserID,
		UploadedBy: m.UploadedBy,
		Title:      m.Title,
		FileURL:    m.FileURL,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
