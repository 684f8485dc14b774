package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-05-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-05-01", FormatDate(d))

	_, err = ParseDate("05/01/2025")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestNightsAndDays(t *testing.T) {
	start, _ := ParseDate("2025-05-01")
	end, _ := ParseDate("2025-05-03")

	nights, days := NightsAndDays(start, end)
	assert.Equal(t, 2, nights)
	assert.Equal(t, 3, days)

	nights, days = NightsAndDays(start, start)
	assert.Equal(t, 0, nights)
	assert.Equal(t, 1, days)
}

func TestDaysBetweenAcrossLeapYear(t *testing.T) {
	start, _ := ParseDate("2024-01-01")
	end, _ := ParseDate("2025-01-01")
	assert.Equal(t, 366, DaysBetween(start, end))
}

func TestToday(t *testing.T) {
	// 2025-05-01 20:00 UTC is already 2025-05-02 in Tokyo.
	now := time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-05-02", FormatDate(Today(now)))
}
