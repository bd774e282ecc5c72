package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveTargetAudience(t *testing.T) {
	classID := uuid.New()
	userID := uuid.New()

	assert.Equal(t, "all", DeriveTargetAudience(nil, nil))
	assert.Equal(t, "class", DeriveTargetAudience(&classID, nil))
	assert.Equal(t, "specific", DeriveTargetAudience(nil, &userID))
	assert.Equal(t, "specific", DeriveTargetAudience(&classID, &userID), "a single-user target outranks the class scope")
}

func TestCreateAnnouncementToModel(t *testing.T) {
	classID := uuid.New()

	m, err := CreateAnnouncementRequest{
		ClassID: classID.String(),
		Title:   "Exam moved",
		Message: "Now on Friday",
	}.ToModel()
	require.NoError(t, err)

	assert.Equal(t, "general", m.Type)
	assert.True(t, m.IsActive)
	assert.Equal(t, DefaultPriority, m.Priority, "blank priority falls back to medium")
	assert.Equal(t, "class", m.TargetAudience)
	require.NotNil(t, m.ClassID)
	assert.Equal(t, classID, *m.ClassID)
}

func TestCreateAnnouncementGlobal(t *testing.T) {
	m, err := CreateAnnouncementRequest{
		Title:    "Holiday",
		Message:  "Platform closed Monday",
		Priority: "high",
	}.ToModel()
	require.NoError(t, err)

	assert.Nil(t, m.ClassID)
	assert.Equal(t, "all", m.TargetAudience)
	assert.Equal(t, "high", m.Priority)
}

func TestUpdateAnnouncementChanges(t *testing.T) {
	clear := ""
	title := "New"
	changes, err := UpdateAnnouncementRequest{ClassID: &clear, Title: &title}.Changes()
	require.NoError(t, err)

	require.Contains(t, changes, "class_id")
	assert.Nil(t, changes["class_id"].(*uuid.UUID), "clearing the scope writes NULL")
	assert.Equal(t, "New", changes["title"])
	assert.NotContains(t, changes, "message", "unsent fields stay untouched")
}

func TestUpdateAnnouncementRejectsBadUUID(t *testing.T) {
	bad := "nope"
	_, err := UpdateAnnouncementRequest{ClassID: &bad}.Changes()
	assert.Error(t, err)
}
