package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DurationContext selects which units are legal for a duration expression
type DurationContext int

const (
	ShiftContext DurationContext = iota
	LeaveContext
)

func (c DurationContext) String() string {
	if c == LeaveContext {
		return "leave"
	}
	return "shift"
}

var durationPattern = regexp.MustCompile(`^(\d+)\s*(mo|[hmdw])$`)

var durationUnits = map[string]time.Duration{
	"m":  time.Minute,
	"h":  time.Hour,
	"d":  Day,
	"w":  Week,
	"mo": Month,
}

// ParseDuration converts expressions like "2h", "30m", "1w" or "1mo" into a duration.
// Minutes are only accepted in ShiftContext; a leave must use days, weeks or months.
func ParseDuration(text string, ctx DurationContext) (time.Duration, error) {
	match := durationPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(text)))
	if match == nil {
		return 0, ErrInvalidDuration
	}

	unit := match[2]
	if unit == "m" && ctx == LeaveContext {
		return 0, ErrMinutesNotAllowed
	}

	value, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil || value <= 0 {
		return 0, ErrInvalidDuration
	}

	size := durationUnits[unit]
	if value > math.MaxInt64/int64(size) {
		return 0, ErrInvalidDuration
	}

	return time.Duration(value) * size, nil
}

// FormatDuration renders a span using the largest unit first plus at most one
// remainder term, e.g. "1 hour, 30 minutes" or "2 months, 3 days".
// Every unit is floored; months are 30 days and weeks are 7 days.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0 minutes"
	}

	minutes := int64(d / time.Minute)
	hours := minutes / 60
	days := hours / 24
	weeks := days / 7
	months := days / 30

	switch {
	case months > 0:
		return compound(months, "month", days%30, "day")
	case weeks > 0:
		return compound(weeks, "week", days%7, "day")
	case days > 0:
		return compound(days, "day", hours%24, "hour")
	case hours > 0:
		return compound(hours, "hour", minutes%60, "minute")
	default:
		return plural(minutes, "minute")
	}
}

func compound(n int64, unit string, rest int64, restUnit string) string {
	if rest <= 0 {
		return plural(n, unit)
	}
	return plural(n, unit) + ", " + plural(rest, restUnit)
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatTimestamp renders an instant as a Slack date token that each client
// shows in its own timezone, with a UTC fallback.
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("<!date^%d^{date_short_pretty} at {time}|%s>",
		t.Unix(),
		t.UTC().Format("2006-01-02 15:04 UTC"),
	)
}
