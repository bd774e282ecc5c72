package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsLiveAt(t *testing.T) {
	start := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	end := start.Add(60 * time.Minute)
	class := LiveClassModel{ScheduledDatetime: start, EndDatetime: end}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "exactly at start", at: start, want: true},
		{name: "exactly at end", at: end, want: true},
		{name: "mid session", at: start.Add(30 * time.Minute), want: true},
		{name: "just before start", at: start.Add(-time.Millisecond), want: false},
		{name: "just after end", at: end.Add(time.Millisecond), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, class.IsLiveAt(tt.at))
		})
	}
}
