package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Japan time location (JST, +09:00). Trip dates are calendar dates in this zone.
var jstLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Tokyo"); err == nil {
		return loc
	}
	return time.FixedZone("JST", 9*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// ParseDate parses a YYYY-MM-DD calendar date in JST.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, jstLoc)
	if err != nil {
		return time.Time{}, NewValidationError(ErrInvalidDateRange, fmt.Sprintf("日付の形式が正しくありません: %q", s))
	}
	return t, nil
}

// Today returns the current calendar date in JST at midnight.
func Today(now time.Time) time.Time {
	n := now.In(jstLoc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, jstLoc)
}

// DaysBetween counts whole calendar days from start to end.
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

// NightsAndDays returns the trip length as nights and days, e.g. 2泊3日.
func NightsAndDays(start, end time.Time) (nights, days int) {
	days = DaysBetween(start, end) + 1
	return days - 1, days
}

func FormatDate(t time.Time) string {
	return t.In(jstLoc).Format(DateLayout)
}
