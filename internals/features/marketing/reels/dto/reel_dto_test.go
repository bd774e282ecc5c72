package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReelDefaults(t *testing.T) {
	before := time.Now()
	m, err := CreateReelRequest{
		Title:    "Launch teaser",
		ReelURL:  "https://instagram.com/reel/abc",
		Platform: "instagram",
	}.ToModel()
	require.NoError(t, err)

	assert.Equal(t, DefaultTag, m.Tag, "blank tag falls back to General")
	assert.Equal(t, int64(0), m.ViewCount, "blank view count means zero, not NULL")
	assert.True(t, m.IsActive)
	assert.False(t, m.PublishedAt.Before(before), "blank publish time means now")
	assert.Nil(t, m.DurationSeconds)
	assert.Nil(t, m.ThumbnailURL)
}

func TestCreateReelExplicitValues(t *testing.T) {
	m, err := CreateReelRequest{
		Title:           "Market recap",
		ReelURL:         "https://youtube.com/shorts/xyz",
		Platform:        "youtube",
		DurationSeconds: "45",
		ViewCount:       "1200",
		PublishedAt:     "2026-02-10T09:00",
		Tag:             "Markets",
	}.ToModel()
	require.NoError(t, err)

	require.NotNil(t, m.DurationSeconds)
	assert.Equal(t, 45, *m.DurationSeconds)
	assert.Equal(t, int64(1200), m.ViewCount)
	assert.Equal(t, "Markets", m.Tag)
	assert.Equal(t, time.Date(2026, 2, 10, 9, 0, 0, 0, time.Local), m.PublishedAt)
}

func TestCreateReelRejectsNegativeViews(t *testing.T) {
	_, err := CreateReelRequest{
		Title:     "Bad",
		ReelURL:   "https://x.com/v/1",
		Platform:  "x",
		ViewCount: "-5",
	}.ToModel()
	assert.Error(t, err)
}

func TestUpdateReelPublishedAt(t *testing.T) {
	set := "2026-02-10T09:00"
	blank := "  "

	changes, err := UpdateReelRequest{PublishedAt: &set}.Changes()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 10, 9, 0, 0, 0, time.Local), changes["published_at"])

	// blanking the field on edit resets the publish time to now
	before := time.Now()
	changes, err = UpdateReelRequest{PublishedAt: &blank}.Changes()
	require.NoError(t, err)
	got, ok := changes["published_at"].(time.Time)
	require.True(t, ok)
	assert.False(t, got.Before(before))

	// an omitted field stays untouched
	changes, err = UpdateReelRequest{}.Changes()
	require.NoError(t, err)
	assert.NotContains(t, changes, "published_at")
}

func TestReelFormRoundTrip(t *testing.T) {
	m, err := CreateReelRequest{
		Title:           "Market recap",
		ReelURL:         "https://youtube.com/shorts/xyz",
		Platform:        "youtube",
		DurationSeconds: "45",
		ViewCount:       "1200",
		PublishedAt:     "2026-02-10T09:00",
		Tag:             "Markets",
	}.ToModel()
	require.NoError(t, err)

	f := NewReelForm(m)
	assert.Equal(t, "45", f.DurationSeconds)
	assert.Equal(t, "1200", f.ViewCount)
	assert.Equal(t, "2026-02-10T09:00", f.PublishedAt)
	assert.Equal(t, "Markets", f.Tag)
	assert.True(t, f.IsActive)
}
