package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "created_at",
		"title":      "title",
	}

	tests := []struct {
		name string
		p    Params
		want string
	}{
		{
			name: "default desc with tie break",
			p:    Params{SortBy: "created_at", SortOrder: "desc"},
			want: "created_at DESC, id ASC",
		},
		{
			name: "asc",
			p:    Params{SortBy: "title", SortOrder: "asc"},
			want: "title ASC, id ASC",
		},
		{
			name: "unknown key falls back to default",
			p:    Params{SortBy: "password; DROP TABLE", SortOrder: "desc"},
			want: "created_at DESC, id ASC",
		},
		{
			name: "empty key uses default",
			p:    Params{SortOrder: "asc"},
			want: "created_at ASC, id ASC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.p.SafeOrderClause(allowed, "created_at", "id ASC")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSafeOrderClauseNoDuplicateTieBreak(t *testing.T) {
	allowed := map[string]string{"id": "id"}
	got, err := (Params{SortBy: "id", SortOrder: "asc"}).SafeOrderClause(allowed, "id", "id ASC")
	require.NoError(t, err)
	assert.Equal(t, "id ASC", got, "tie break is skipped when already sorting by its column")
}

func TestSafeOrderClauseNoDefault(t *testing.T) {
	_, err := (Params{SortBy: "nope"}).SafeOrderClause(map[string]string{}, "created_at", "id ASC")
	assert.Error(t, err)
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(120, Params{Page: 2, PerPage: 50})
	assert.Equal(t, int64(120), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	require.NotNil(t, meta.NextPage)
	assert.Equal(t, 3, *meta.NextPage)
	require.NotNil(t, meta.PrevPage)
	assert.Equal(t, 1, *meta.PrevPage)
}

func TestBuildMetaEmpty(t *testing.T) {
	meta := BuildMeta(0, Params{Page: 1, PerPage: 50})
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
	assert.Nil(t, meta.NextPage)
	assert.Nil(t, meta.PrevPage)
}
