package localtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormatter_Errors(t *testing.T) {
	_, err := NewFormatter("xx-YY", "UTC", Medium, Short)
	assert.Error(t, err)

	_, err = NewFormatter("en-US", "Mars/Olympus_Mons", Medium, Short)
	assert.Error(t, err)

	_, err = NewFormatter("en-US", "UTC", "tiny", Short)
	assert.Error(t, err)

	_, err = NewFormatter("en-US", "UTC", Medium, "")
	assert.Error(t, err)
}

func TestSupportedLocale(t *testing.T) {
	assert.True(t, SupportedLocale("en-US"))
	assert.True(t, SupportedLocale("en_GB"))
	assert.True(t, SupportedLocale("fr"))
	assert.True(t, SupportedLocale("en-NZ"), "region falls back to base language")
	assert.False(t, SupportedLocale("zz"))
	assert.False(t, SupportedLocale(""))
}

func TestFormatter_Format_ConvertsZone(t *testing.T) {
	f, err := NewFormatter("en-US", "America/Los_Angeles", Medium, Short)
	require.NoError(t, err)

	// 2026-01-01 03:30 UTC is still Dec 31 2025 in Los Angeles
	instant := time.Date(2026, time.January, 1, 3, 30, 0, 0, time.UTC)
	out := f.Format(instant)

	assert.Contains(t, out, "2025")
	assert.Contains(t, out, "31")
	assert.Contains(t, out, ", ")
}

func TestFormatter_Format_Deterministic(t *testing.T) {
	f, err := NewFormatter("en-US", "UTC", Long, Medium)
	require.NoError(t, err)

	instant := time.Date(2026, time.October, 18, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, f.Format(instant), f.Format(instant))
	assert.Contains(t, f.Format(instant), "2026")
}

func TestStyle_Valid(t *testing.T) {
	for _, s := range []Style{Full, Long, Medium, Short} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Style("MEDIUM").Valid())
}

func TestFormatter_Format_EnglishStylePairs(t *testing.T) {
	instant := time.Date(2026, time.October, 18, 22, 4, 0, 0, time.UTC)

	tests := []struct {
		date, time Style
		want       string
	}{
		{Medium, Short, "Oct 18, 2026, 3:04 PM"},
		{Medium, Medium, "Oct 18, 2026, 3:04:00 PM"},
		{Long, Long, "October 18, 2026 at 3:04:00 PM PDT"},
		{Full, Full, "Sunday, October 18, 2026 at 3:04:00 PM Pacific Daylight Time"},
	}

	for _, tt := range tests {
		t.Run(string(tt.date)+"/"+string(tt.time), func(t *testing.T) {
			f, err := NewFormatter("en-US", "America/Los_Angeles", tt.date, tt.time)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Format(instant))
		})
	}
}

func TestFormatter_Format_MorningIsAM(t *testing.T) {
	f, err := NewFormatter("en-US", "UTC", Medium, Short)
	require.NoError(t, err)

	out := f.Format(time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC))
	assert.Equal(t, "Oct 18, 2026, 9:30 AM", out)
}
