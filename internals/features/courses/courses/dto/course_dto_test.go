package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourseToModel(t *testing.T) {
	m, err := CreateCourseRequest{
		Title:              "Go for Beginners",
		Description:        "Twelve weeks of Go",
		DurationWeeks:      "12",
		Price:              "499.99",
		EnrollmentDeadline: "2026-09-01",
		WhatYouLearn:       "Variables\nLoops\n\nFunctions\n",
		Prerequisites:      "",
	}.ToModel()
	require.NoError(t, err)

	assert.Equal(t, DefaultLevel, m.Level, "blank level falls back to beginner")
	require.NotNil(t, m.DurationWeeks)
	assert.Equal(t, 12, *m.DurationWeeks)
	require.NotNil(t, m.Price)
	assert.Equal(t, 499.99, *m.Price)
	require.NotNil(t, m.EnrollmentDeadline)
	assert.Equal(t, []string{"Variables", "Loops", "Functions"}, []string(m.WhatYouLearn))
	assert.Empty(t, []string(m.Prerequisites))
	assert.True(t, m.IsActive)
	assert.Nil(t, m.ThumbnailURL)
	assert.Nil(t, m.InstructorName)
}

func TestCreateCourseRejectsBadNumbers(t *testing.T) {
	_, err := CreateCourseRequest{Title: "T", Description: "D", Price: "free"}.ToModel()
	assert.Error(t, err)

	_, err = CreateCourseRequest{Title: "T", Description: "D", DurationWeeks: "two"}.ToModel()
	assert.Error(t, err)

	_, err = CreateCourseRequest{Title: "T", Description: "D", EnrollmentDeadline: "01-09-2026"}.ToModel()
	assert.Error(t, err)
}

func TestCourseFormRoundTrip(t *testing.T) {
	m, err := CreateCourseRequest{
		Title:              "Go for Beginners",
		Description:        "Twelve weeks of Go",
		Level:              "intermediate",
		DurationWeeks:      "12",
		Price:              "499.99",
		EnrollmentDeadline: "2026-09-01",
		InstructorName:     "Rishika",
		WhatYouLearn:       "Variables\nLoops",
	}.ToModel()
	require.NoError(t, err)

	f := NewCourseForm(m)
	assert.Equal(t, "Go for Beginners", f.Title)
	assert.Equal(t, "intermediate", f.Level)
	assert.Equal(t, "12", f.DurationWeeks)
	assert.Equal(t, "499.99", f.Price)
	assert.Equal(t, "2026-09-01", f.EnrollmentDeadline)
	assert.Equal(t, "Rishika", f.InstructorName)
	assert.Equal(t, "Variables\nLoops", f.WhatYouLearn)
	assert.Equal(t, "", f.Prerequisites)
}

func TestUpdateCourseChanges(t *testing.T) {
	clear := ""
	inactive := false
	changes, err := UpdateCourseRequest{
		Price:    &clear,
		IsActive: &inactive,
	}.Changes()
	require.NoError(t, err)

	require.Contains(t, changes, "price")
	assert.Nil(t, changes["price"].(*float64), "clearing price writes NULL")
	assert.Equal(t, false, changes["is_active"], "deactivation still writes")
	assert.NotContains(t, changes, "title")
}

func TestDefaultCourseForm(t *testing.T) {
	f := DefaultCourseForm()
	assert.Equal(t, DefaultLevel, f.Level)
	assert.True(t, f.IsActive)
}
