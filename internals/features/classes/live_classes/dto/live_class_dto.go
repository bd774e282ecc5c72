package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	model "deeco_backend/internals/features/classes/live_classes/model"
	"deeco_backend/internals/crud"
)

// Draft defaults mirrored by the admin UI's create form.
const (
	DefaultMeetingLink     = "https://meet.google.com/qzh-kctw-doa"
	DefaultInstructorName  = "Rishika"
	DefaultDurationMinutes = 60
)

/* ===================== REQUESTS ===================== */

// CreateLiveClassRequest carries the form draft as submitted: datetimes in
// the datetime-local shape, numbers still text. end_datetime is derived
// server-side from the schedule and duration.
type CreateLiveClassRequest struct {
	UserID            string `json:"user_id" form:"user_id" validate:"required,uuid"`
	Title             string `json:"title" form:"title" validate:"required,min=2,max=200"`
	InstructorName    string `json:"instructor_name" form:"instructor_name" validate:"required,max=120"`
	MeetingLink       string `json:"meeting_link" form:"meeting_link" validate:"omitempty,url"`
	ScheduledDatetime string `json:"scheduled_datetime" form:"scheduled_datetime" validate:"required"`
	DurationMinutes   string `json:"duration_minutes" form:"duration_minutes" validate:"required,numeric"`
}

func (r CreateLiveClassRequest) ToModel() (*model.LiveClassModel, error) {
	userID, err := uuid.Parse(strings.TrimSpace(r.UserID))
	if err != nil {
		return nil, fmt.Errorf("user_id: invalid uuid")
	}
	scheduled, err := crud.ParseFormDateTime(r.ScheduledDatetime)
	if err != nil {
		return nil, fmt.Errorf("scheduled_datetime: %v", err)
	}
	duration, err := strconv.Atoi(strings.TrimSpace(r.DurationMinutes))
	if err != nil || duration <= 0 {
		return nil, fmt.Errorf("duration_minutes: must be a positive number")
	}

	return &model.LiveClassModel{
		UserID:            userID,
		Title:             strings.TrimSpace(r.Title),
		InstructorName:    strings.TrimSpace(r.InstructorName),
		MeetingLink:       crud.NullableString(r.MeetingLink),
		ScheduledDatetime: scheduled,
		EndDatetime:       scheduled.Add(time.Duration(duration) * time.Minute),
		DurationMinutes:   duration,
	}, nil
}

/* ===================== UPDATE (partial) ===================== */

type UpdateLiveClassRequest struct {
	UserID            *string `json:"user_id" form:"user_id" validate:"omitempty,uuid"`
	Title             *string `json:"title" form:"title" validate:"omitempty,min=2,max=200"`
	InstructorName    *string `json:"instructor_name" form:"instructor_name" validate:"omitempty,max=120"`
	MeetingLink       *string `json:"meeting_link" form:"meeting_link"`
	ScheduledDatetime *string `json:"scheduled_datetime" form:"scheduled_datetime"`
	DurationMinutes   *string `json:"duration_minutes" form:"duration_minutes" validate:"omitempty,numeric"`
}

// Changes builds the updates map so falsy values still write. The
// end_datetime recompute happens in the controller once the final
// schedule/duration pair is known.
func (r UpdateLiveClassRequest) Changes() (map[string]any, error) {
	updates := map[string]any{}
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
	if r.InstructorName != nil {
		updates["instructor_name"] = strings.TrimSpace(*r.InstructorName)
	}
	if r.MeetingLink != nil {
		updates["meeting_link"] = crud.NullableString(*r.MeetingLink) // "" → NULL
	}
	if r.ScheduledDatetime != nil {
		scheduled, err := crud.ParseFormDateTime(*r.ScheduledDatetime)
		if err != nil {
			return nil, fmt.Errorf("scheduled_datetime: %v", err)
		}
		updates["scheduled_datetime"] = scheduled
	}
	if r.DurationMinutes != nil {
		duration, err := strconv.Atoi(strings.TrimSpace(*r.DurationMinutes))
		if err != nil || duration <= 0 {
			return nil, fmt.Errorf("duration_minutes: must be a positive number")
		}
		updates["duration_minutes"] = duration
	}
	return updates, nil
}

/* ===================== EDIT FORM ===================== */

// LiveClassForm is the editable draft for an existing class: exactly the
// fields the form shows, in form encodings.
type LiveClassForm struct {
	UserID            string `json:"user_id"`
	Title             string `json:"title"`
	InstructorName    string `json:"instructor_name"`
	MeetingLink       string `json:"meeting_link"`
	ScheduledDatetime string `json:"scheduled_datetime"`
	DurationMinutes   string `json:"duration_minutes"`
}

func NewLiveClassForm(m *model.LiveClassModel) LiveClassForm {
	meetingLink := DefaultMeetingLink
	if m.MeetingLink != nil && strings.TrimSpace(*m.MeetingLink) != "" {
		meetingLink = *m.MeetingLink
	}
	instructor := m.InstructorName
	if strings.TrimSpace(instructor) == "" {
		instructor = DefaultInstructorName
	}
	return LiveClassForm{
		UserID:            m.UserID.String(),
		Title:             m.Title,
		InstructorName:    instructor,
		MeetingLink:       meetingLink,
		ScheduledDatetime: crud.FormatFormDateTime(m.ScheduledDatetime),
		DurationMinutes:   strconv.Itoa(m.DurationMinutes),
	}
}

// DefaultLiveClassForm is the create draft (beginCreate defaults).
func DefaultLiveClassForm() LiveClassForm {
	return LiveClassForm{
		InstructorName:  DefaultInstructorName,
		MeetingLink:     DefaultMeetingLink,
		DurationMinutes: strconv.Itoa(DefaultDurationMinutes),
	}
}

/* ===================== RESPONSES ===================== */

type LiveClassResponse struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	AssignedUserName  string    `json:"assigned_user_name,omitempty"`
	Title             string    `json:"title"`
	InstructorName    string    `json:"instructor_name"`
	MeetingLink       *string   `json:"meeting_link,omitempty"`
	ScheduledDatetime time.Time `json:"scheduled_datetime"`
	EndDatetime       time.Time `json:"end_datetime"`
	DurationMinutes   int       `json:"duration_minutes"`
	IsLive            bool      `json:"is_live"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func NewLiveClassResponse(m *model.LiveClassModel, now time.Time) *LiveClassResponse {
	if m == nil {
		return nil
	}
	return &LiveClassResponse{
		ID:                m.ID,
		UserID:            m.UserID,
		Title:             m.Title,
		InstructorName:    m.InstructorName,
		MeetingLink:       m.MeetingLink,
		ScheduledDatetime: m.ScheduledDatetime,
		EndDatetime:       m.EndDatetime,
		DurationMinutes:   m.DurationMinutes,
		IsLive:            m.IsLiveAt(now),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ClassOption feeds class dropdowns on the enrollment/notes/recordings
// screens.
type ClassOption struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}
