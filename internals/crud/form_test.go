package crud

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableString(t *testing.T) {
	assert.Nil(t, NullableString(""))
	assert.Nil(t, NullableString("   "))

	got := NullableString("  hello ")
	require.NotNil(t, got)
	assert.Equal(t, "hello", *got)
}

func TestNullableUUID(t *testing.T) {
	got, err := NullableUUID("")
	require.NoError(t, err)
	assert.Nil(t, got)

	id := uuid.New()
	got, err = NullableUUID(" " + id.String() + " ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	_, err = NullableUUID("not-a-uuid")
	assert.Error(t, err)
}

func TestNullableInt(t *testing.T) {
	got, err := NullableInt("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = NullableInt(" 42 ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 42, *got)

	// malformed input must be rejected, not coerced to zero
	_, err = NullableInt("12x")
	assert.Error(t, err)
}

func TestNullableFloat(t *testing.T) {
	got, err := NullableFloat("499.99")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 499.99, *got)

	got, err = NullableFloat("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = NullableFloat("free")
	assert.Error(t, err)
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "blank lines dropped", in: "a\n\n  \nb", want: []string{"a", "b"}},
		{name: "crlf", in: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "trimmed", in: "  a  \n b", want: []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.in))
		})
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	items := []string{"Variables", "Loops", "Functions"}
	assert.Equal(t, items, SplitLines(JoinLines(items)))
}

func TestParseFormDateTime(t *testing.T) {
	got, err := ParseFormDateTime("2026-03-15T14:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local), got)

	// stored values may carry seconds; they still parse
	got, err = ParseFormDateTime("2026-03-15T14:30:45")
	require.NoError(t, err)
	assert.Equal(t, 45, got.Second())

	_, err = ParseFormDateTime("15/03/2026")
	assert.Error(t, err)
}

func TestFormDateTimeRoundTrip(t *testing.T) {
	const draft = "2026-03-15T14:30"
	parsed, err := ParseFormDateTime(draft)
	require.NoError(t, err)
	assert.Equal(t, draft, FormatFormDateTime(parsed))
}

func TestNullableDate(t *testing.T) {
	got, err := NullableDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = NullableDate("2026-09-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2026-09-01", got.Format(FormDateLayout))

	_, err = NullableDate("01-09-2026")
	assert.Error(t, err)
}
