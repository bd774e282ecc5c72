package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"deeco_backend/internals/crud"
	model "deeco_backend/internals/features/classes/enrollments/model"
)

/* ===================== REQUESTS ===================== */

// CreateEnrollmentRequest: user is required, class is optional — an empty
// class selection enrolls the user platform-wide and stores NULL.
type CreateEnrollmentRequest struct {
	ClassID string `json:"class_id" form:"class_id" validate:"omitempty,uuid"`
	UserID  string `json:"user_id" form:"user_id" validate:"required,uuid"`
}

func (r CreateEnrollmentRequest) ToModel() (*model.EnrollmentModel, error) {
	userID, err := uuid.Parse(strings.TrimSpace(r.UserID))
	if err != nil {
		return nil, fmt.Errorf("user_id: invalid uuid")
	}
	classID, err := crud.NullableUUID(r.ClassID)
	if err != nil {
		return nil, fmt.Errorf("class_id: %v", err)
	}
	return &model.EnrollmentModel{
		ClassID: classID,
		UserID:  userID,
	}, nil
}

/* ===================== RESPONSES ===================== */

type EnrollmentResponse struct {
	ID             uuid.UUID  `json:"id"`
	ClassID        *uuid.UUID `json:"class_id,omitempty"`
	ClassTitle     string     `json:"class_title,omitempty"`
	UserID         uuid.UUID  `json:"user_id"`
	UserName       string     `json:"user_name,omitempty"`
	EnrollmentDate time.Time  `json:"enrollment_date"`
}

func NewEnrollmentResponse(m *model.EnrollmentModel) *EnrollmentResponse {
	if m == nil {
		return nil
	}
	return &EnrollmentResponse{
		ID:             m.ID,
		ClassID:        m.ClassID,
		UserID:         m.UserID,
		EnrollmentDate: m.EnrollmentDate,
	}
}
