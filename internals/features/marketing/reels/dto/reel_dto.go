package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"deeco_backend/internals/crud"
	model "deeco_backend/internals/features/marketing/reels/model"
)

// Blank drafts fall back to these on create.
const (
	DefaultTag      = "General"
	DefaultPlatform = "instagram"
)

/* ===================== REQUESTS ===================== */

type CreateReelRequest struct {
	Title           string `json:"title" form:"title" validate:"required,min=2,max=200"`
	Description     string `json:"description" form:"description"`
	ReelURL         string `json:"reel_url" form:"reel_url" validate:"required,url"`
	ThumbnailURL    string `json:"thumbnail_url" form:"thumbnail_url" validate:"omitempty,url"`
	Platform        string `json:"platform" form:"platform" validate:"required,oneof=instagram youtube x"`
	DurationSeconds string `json:"duration_seconds" form:"duration_seconds" validate:"omitempty,numeric"`
	ViewCount       string `json:"view_count" form:"view_count" validate:"omitempty,numeric"`
	PublishedAt     string `json:"published_at" form:"published_at"`
	Tag             string `json:"tag" form:"tag" validate:"omitempty,max=80"`
	IsActive        *bool  `json:"is_active" form:"is_active"`
}

func (r CreateReelRequest) ToModel() (*model.ReelModel, error) {
	duration, err := crud.NullableInt(r.DurationSeconds)
	if err != nil {
		return nil, fmt.Errorf("duration_seconds: %v", err)
	}

	// A blank view count means zero, not NULL; the column is counted on.
	var views int64
	if v := strings.TrimSpace(r.ViewCount); v != "" {
		views, err = strconv.ParseInt(v, 10, 64)
		if err != nil || views < 0 {
			return nil, fmt.Errorf("view_count: must be a non-negative number")
		}
	}

	// A blank publish datetime means "published now".
	publishedAt := time.Now()
	if strings.TrimSpace(r.PublishedAt) != "" {
		publishedAt, err = crud.ParseFormDateTime(r.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("published_at: %v", err)
		}
	}

	tag := strings.TrimSpace(r.Tag)
	if tag == "" {
		tag = DefaultTag
	}
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &model.ReelModel{
		Title:           strings.TrimSpace(r.Title),
		Description:     crud.NullableString(r.Description),
		ReelURL:         strings.TrimSpace(r.ReelURL),
		ThumbnailURL:    crud.NullableString(r.ThumbnailURL),
		Platform:        r.Platform,
		DurationSeconds: duration,
		ViewCount:       views,
		PublishedAt:     publishedAt,
		Tag:             tag,
		IsActive:        isActive,
	}, nil
}

/* ===================== UPDATE (partial) ===================== */

type UpdateReelRequest struct {
	Title           *string `json:"title" form:"title" validate:"omitempty,min=2,max=200"`
	Description     *string `json:"description" form:"description"`
	ReelURL         *string `json:"reel_url" form:"reel_url" validate:"omitempty,url"`
	ThumbnailURL    *string `json:"thumbnail_url" form:"thumbnail_url"`
	Platform        *string `json:"platform" form:"platform" validate:"omitempty,oneof=instagram youtube x"`
	DurationSeconds *string `json:"duration_seconds" form:"duration_seconds" validate:"omitempty,numeric"`
	ViewCount       *string `json:"view_count" form:"view_count" validate:"omitempty,numeric"`
	PublishedAt     *string `json:"published_at" form:"published_at"`
	Tag             *string `json:"tag" form:"tag" validate:"omitempty,max=80"`
	IsActive        *bool   `json:"is_active" form:"is_active"`
}

func (r UpdateReelRequest) Changes() (map[string]any, error) {
	updates := map[string]any{}
	if r.Title != nil {
		updates["title"] = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		updates["description"] = crud.NullableString(*r.Description)
	}
	if r.ReelURL != nil {
		updates["reel_url"] = strings.TrimSpace(*r.ReelURL)
	}
	if r.ThumbnailURL != nil {
		updates["thumbnail_url"] = crud.NullableString(*r.ThumbnailURL)
	}
	if r.Platform != nil && *r.Platform != "" {
		updates["platform"] = *r.Platform
	}
	if r.DurationSeconds != nil {
		n, err := crud.NullableInt(*r.DurationSeconds)
		if err != nil {
			return nil, fmt.Errorf("duration_seconds: %v", err)
		}
		updates["duration_seconds"] = n
	}
	if r.ViewCount != nil {
		v := strings.TrimSpace(*r.ViewCount)
		views := int64(0)
		if v != "" {
			var err error
			views, err = strconv.ParseInt(v, 10, 64)
			if err != nil || views < 0 {
				return nil, fmt.Errorf("view_count: must be a non-negative number")
			}
		}
		updates["view_count"] = views
	}
	if r.PublishedAt != nil {
		// Blanking the publish datetime resets it to now, same as on create.
		t := time.Now()
		if strings.TrimSpace(*r.PublishedAt) != "" {
			var err error
			t, err = crud.ParseFormDateTime(*r.PublishedAt)
			if err != nil {
				return nil, fmt.Errorf("published_at: %v", err)
			}
		}
		updates["published_at"] = t
	}
	if r.Tag != nil {
		tag := strings.TrimSpace(*r.Tag)
		if tag == "" {
			tag = DefaultTag
		}
		updates["tag"] = tag
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	return updates, nil
}

/* ===================== EDIT FORM ===================== */

type ReelForm struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	ReelURL         string `json:"reel_url"`
	ThumbnailURL    string `json:"thumbnail_url"`
	Platform        string `json:"platform"`
	DurationSeconds string `json:"duration_seconds"`
	ViewCount       string `json:"view_count"`
	PublishedAt     string `json:"published_at"`
	Tag             string `json:"tag"`
	IsActive        bool   `json:"is_active"`
}

func NewReelForm(m *model.ReelModel) ReelForm {
	f := ReelForm{
		Title:       m.Title,
		ReelURL:     m.ReelURL,
		Platform:    m.Platform,
		ViewCount:   strconv.FormatInt(m.ViewCount, 10),
		PublishedAt: crud.FormatFormDateTime(m.PublishedAt),
		Tag:         m.Tag,
		IsActive:    m.IsActive,
	}
	if m.Description != nil {
		f.Description = *m.Description
	}
	if m.ThumbnailURL != nil {
		f.ThumbnailURL = *m.ThumbnailURL
	}
	if m.DurationSeconds != nil {
		f.DurationSeconds = strconv.Itoa(*m.DurationSeconds)
	}
	return f
}

func DefaultReelForm() ReelForm {
	return ReelForm{Platform: DefaultPlatform, IsActive: true}
}

/* ===================== RESPONSES ===================== */

type ReelResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	ReelURL         string    `json:"reel_url"`
	ThumbnailURL    *string   `json:"thumbnail_url,omitempty"`
	Platform        string    `json:"platform"`
	DurationSeconds *int      `json:"duration_seconds,omitempty"`
	ViewCount       int64     `json:"view_count"`
	PublishedAt     time.Time `json:"published_at"`
	Tag             string    `json:"tag"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewReelResponse(m *model.ReelModel) *ReelResponse {
	if m == nil {
		return nil
	}
	return &ReelResponse{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		ReelURL:         m.ReelURL,
		ThumbnailURL:    m.ThumbnailURL,
		Platform:        m.Platform,
		DurationSeconds: m.DurationSeconds,
		ViewCount:       m.ViewCount,
		PublishedAt:     m.PublishedAt,
		Tag:             m.Tag,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
