package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"deeco_backend/internals/crud"
	model "deeco_backend/internals/features/courses/courses/model"
)

const DefaultLevel = "beginner"

/* ===================== REQUESTS ===================== */

// CreateCourseRequest carries the catalog form as typed: numbers still text,
// the two list fields as one-item-per-line textareas.
type CreateCourseRequest struct {
	Title              string `json:"title" form:"title" validate:"required,min=2,max=200"`
	Description        string `json:"description" form:"description" validate:"required"`
	Level              string `json:"level" form:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	DurationWeeks      string `json:"duration_weeks" form:"duration_weeks" validate:"omitempty,numeric"`
	ThumbnailURL       string `json:"thumbnail_url" form:"thumbnail_url" validate:"omitempty,url"`
	EnrollmentDeadline string `json:"enrollment_deadline" form:"enrollment_deadline"`
	Price              string `json:"price" form:"price"`
	InstructorName     string `json:"instructor_name" form:"instructor_name" validate:"omitempty,max=120"`
	WhatYouLearn       string `json:"what_you_learn" form:"what_you_learn"`
	Prerequisites      string `json:"prerequisites" form:"prerequisites"`
	IsActive           *bool  `json:"is_active" form:"is_active"`
}

func (r CreateCourseRequest) ToModel() (*model.CourseModel, error) {
	level := r.Level
	if level == "" {
		level = DefaultLevel
	}
	duration, err := crud.NullableInt(r.DurationWeeks)
	if err != nil {
		return nil, fmt.Errorf("duration_weeks: %v", err)
	}
	price, err := crud.NullableFloat(r.Price)
	if err != nil {
		return nil, fmt.Errorf("price: %v", err)
	}
	deadline, err := nullableDeadline(r.EnrollmentDeadline)
	if err != nil {
		return nil, err
	}
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return &model.CourseModel{
		Title:              strings.TrimSpace(r.Title),
		Description:        r.Description,
		Level:              level,
		DurationWeeks:      duration,
		ThumbnailURL:       crud.NullableString(r.ThumbnailURL),
		EnrollmentDeadline: deadline,
		Price:              price,
		InstructorName:     crud.NullableString(r.InstructorName),
		WhatYouLearn:       pq.StringArray(crud.SplitLines(r.WhatYouLearn)),
		Prerequisites:      pq.StringArray(crud.SplitLines(r.Prerequisites)),
		IsActive:           isActive,
	}, nil
}

func nullableDeadline(s string) (*datatypes.Date, error) {
	t, err := crud.NullableDate(s)
	if err != nil {
		return nil, fmt.Errorf("enrollment_deadline: %v", err)
	}
	if t == nil {
		return nil, nil
	}
	d := datatypes.Date(*t)
	return &d, nil
}

/* ===================== UPDATE (partial) ===================== */

type UpdateCourseRequest struct {
	Title              *string `json:"title" form:"title" validate:"omitempty,min=2,max=200"`
	Description        *string `json:"description" form:"description"`
	Level              *string `json:"level" form:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	DurationWeeks      *string `json:"duration_weeks" form:"duration_weeks" validate:"omitempty,numeric"`
	ThumbnailURL       *string `json:"thumbnail_url" form:"thumbnail_url"`
	EnrollmentDeadline *string `json:"enrollment_deadline" form:"enrollment_deadline"`
	Price              *string `json:"price" form:"price"`
	InstructorName     *string `json:"instructor_name" form:"instructor_name" validate:"omitempty,max=120"`
	WhatYouLearn       *string `json:"what_you_learn" form:"what_you_learn"`
	Prerequisites      *string `json:"prerequisites" form:"prerequisites"`
	IsActive           *bool   `json:"is_active" form:"is_active"`
}

func (r UpdateCourseRequest) Changes() (map[string]any, error) {
	updates := map[string]any{}
	if r.Title != nil {
		updates["title"] = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Level != nil && *r.Level != "" {
		updates["level"] = *r.Level
	}
	if r.DurationWeeks != nil {
		n, err := crud.NullableInt(*r.DurationWeeks)
		if err != nil {
			return nil, fmt.Errorf("duration_weeks: %v", err)
		}
		updates["duration_weeks"] = n
	}
	if r.ThumbnailURL != nil {
		updates["thumbnail_url"] = crud.NullableString(*r.ThumbnailURL)
	}
	if r.EnrollmentDeadline != nil {
		d, err := nullableDeadline(*r.EnrollmentDeadline)
		if err != nil {
			return nil, err
		}
		updates["enrollment_deadline"] = d
	}
	if r.Price != nil {
		f, err := crud.NullableFloat(*r.Price)
		if err != nil {
			return nil, fmt.Errorf("price: %v", err)
		}
		updates["price"] = f
	}
	if r.InstructorName != nil {
		updates["instructor_name"] = crud.NullableString(*r.InstructorName)
	}
	if r.WhatYouLearn != nil {
		updates["what_you_learn"] = pq.StringArray(crud.SplitLines(*r.WhatYouLearn))
	}
	if r.Prerequisites != nil {
		updates["prerequisites"] = pq.StringArray(crud.SplitLines(*r.Prerequisites))
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive // false still writes
	}
	return updates, nil
}

/* ===================== EDIT FORM ===================== */

// CourseForm is the editable draft: stored lists joined back into textarea
// text, numbers and the deadline back into input strings.
type CourseForm struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	Level              string `json:"level"`
	DurationWeeks      string `json:"duration_weeks"`
	ThumbnailURL       string `json:"thumbnail_url"`
	EnrollmentDeadline string `json:"enrollment_deadline"`
	Price              string `json:"price"`
	InstructorName     string `json:"instructor_name"`
	WhatYouLearn       string `json:"what_you_learn"`
	Prerequisites      string `json:"prerequisites"`
	IsActive           bool   `json:"is_active"`
}

func NewCourseForm(m *model.CourseModel) CourseForm {
	f := CourseForm{
		Title:         m.Title,
		Description:   m.Description,
		Level:         m.Level,
		WhatYouLearn:  crud.JoinLines(m.WhatYouLearn),
		Prerequisites: crud.JoinLines(m.Prerequisites),
		IsActive:      m.IsActive,
	}
	if m.DurationWeeks != nil {
		f.DurationWeeks = strconv.Itoa(*m.DurationWeeks)
	}
	if m.ThumbnailURL != nil {
		f.ThumbnailURL = *m.ThumbnailURL
	}
	if m.EnrollmentDeadline != nil {
		f.EnrollmentDeadline = time.Time(*m.EnrollmentDeadline).Format(crud.FormDateLayout)
	}
	if m.Price != nil {
		f.Price = strconv.FormatFloat(*m.Price, 'f', -1, 64)
	}
	if m.InstructorName != nil {
		f.InstructorName = *m.InstructorName
	}
	return f
}

func DefaultCourseForm() CourseForm {
	return CourseForm{Level: DefaultLevel, IsActive: true}
}

/* ===================== RESPONSES ===================== */

type CourseResponse struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Level              string    `json:"level"`
	DurationWeeks      *int      `json:"duration_weeks,omitempty"`
	ThumbnailURL       *string   `json:"thumbnail_url,omitempty"`
	EnrollmentDeadline string    `json:"enrollment_deadline,omitempty"`
	Price              *float64  `json:"price,omitempty"`
	InstructorName     *string   `json:"instructor_name,omitempty"`
	WhatYouLearn       []string  `json:"what_you_learn"`
	Prerequisites      []string  `json:"prerequisites"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewCourseResponse(m *model.CourseModel) *CourseResponse {
	if m == nil {
		return nil
	}
	resp := &CourseResponse{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		Level:          m.Level,
		DurationWeeks:  m.DurationWeeks,
		ThumbnailURL:   m.ThumbnailURL,
		Price:          m.Price,
		InstructorName: m.InstructorName,
		WhatYouLearn:   m.WhatYouLearn,
		Prerequisites:  m.Prerequisites,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.EnrollmentDeadline != nil {
		resp.EnrollmentDeadline = time.Time(*m.EnrollmentDeadline).Format(crud.FormDateLayout)
	}
	if resp.WhatYouLearn == nil {
		resp.WhatYouLearn = []string{}
	}
	if resp.Prerequisites == nil {
		resp.Prerequisites = []string{}
	}
	return resp
}
