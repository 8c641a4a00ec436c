package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantDate time.Time
	}{
		{
			name:     "well-formed date",
			input:    "2024-01-05",
			wantOK:   true,
			wantDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "  2024-01-05  ",
			wantOK:   true,
			wantDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "slashes are rejected",
			input:  "2024/01/05",
			wantOK: false,
		},
		{
			name:   "empty input",
			input:  "",
			wantOK: false,
		},
		{
			name:   "date with time suffix",
			input:  "2024-01-05T10:00:00",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.wantDate.Equal(got))
			}
		})
	}
}

func TestNowUsesFixedZone(t *testing.T) {
	now := Now()

	require.NotNil(t, now.Location())
	assert.Equal(t, Name, now.Location().String())
}

func TestDateOfStripsTimeOfDay(t *testing.T) {
	loc, err := time.LoadLocation(Name)
	require.NoError(t, err)

	stamp := time.Date(2024, 1, 10, 23, 45, 12, 0, loc)
	date := DateOf(stamp)

	assert.Equal(t, "2024-01-10", date.Format(DateLayout))
	assert.Zero(t, date.Hour())
}

func TestDateOfConvertsToOperationalZone(t *testing.T) {
	// 04:00 UTC on the 11th is still the evening of the 10th in CDMX.
	stamp := time.Date(2024, 1, 11, 4, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-10", DateOf(stamp).Format(DateLayout))
}
