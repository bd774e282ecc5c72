package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"deeco_backend/internals/crud"
	model "deeco_backend/internals/features/classes/recordings/model"
)

/* ===================== REQUESTS ===================== */

type CreateRecordingRequest struct {
	ClassID  string `json:"class_id" form:"class_id" validate:"omitempty,uuid"`
	UserID   string `json:"user_id" form:"user_id" validate:"required,uuid"`
	Title    string `json:"title" form:"title" validate:"required,min=2,max=200"`
	VideoURL string `json:"video_url" form:"video_url" validate:"required,url"`
}

func (r CreateRecordingRequest) ToModel() (*model.RecordingModel, error) {
	userID, err := uuid.Parse(strings.TrimSpace(r.UserID))
	if err != nil {
		return nil, fmt.Errorf("user_id: invalid uuid")
	}
	classID, err := crud.NullableUUID(r.ClassID)
	if err != nil {
		return nil, fmt.Errorf("class_id: %v", err)
	}
	return &model.RecordingModel{
		ClassID:  classID,
		UserID:   userID,
		Title:    strings.TrimSpace(r.Title),
		VideoURL: strings.TrimSpace(r.VideoURL),
	}, nil
}

/* ===================== UPDATE (partial) ===================== */

type UpdateRecordingRequest struct {
	ClassID  *string `json:"class_id" form:"class_id"`
	UserID   *string `json:"user_id" form:"user_id" validate:"omitempty,uuid"`
	Title    *string `json:"title" form:"title" validate:"omitempty,min=2,max=200"`
	VideoURL *string `json:"video_url" form:"video_url" validate:"omitempty,url"`
}

func (r UpdateRecordingRequest) Changes() (map[string]any, error) {
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
	if r.VideoURL != nil {
		updates["video_url"] = strings.TrimSpace(*r.VideoURL)
	}
	return updates, nil
}

/* ===================== EDIT FORM ===================== */

type RecordingForm struct {
	ClassID  string `json:"class_id"`
	UserID   string `json:"user_id"`
	Title    string `json:"title"`
	VideoURL string `json:"video_url"`
}

func NewRecordingForm(m *model.RecordingModel) RecordingForm {
	f := RecordingForm{
		UserID:   m.UserID.String(),
		Title:    m.Title,
		VideoURL: m.VideoURL,
	}
	if m.ClassID != nil {
		f.ClassID = m.ClassID.String()
	}
	return f
}

/* ===================== RESPONSES ===================== */

type RecordingResponse struct {
	ID         uuid.UUID  `json:"id"`
	ClassID    *uuid.UUID `json:"class_id,omitempty"`
	ClassTitle string     `json:"class_title,omitempty"`
	UserID     uuid.UUID  `json:"user_id"`
	UserName   string     `json:"user_name,omitempty"`
	Title      string     `json:"title"`
	VideoURL   string     `json:"video_url"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewRecordingResponse(m *model.RecordingModel) *RecordingResponse {
	if m == nil {
		return nil
	}
	return &RecordingResponse{
		ID:        m.ID,
		ClassID:   m.ClassID,
		UserID:    m.UserID,
		Title:     m.Title,
		VideoURL:  m.VideoURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
