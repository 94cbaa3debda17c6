package domain

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		ctx     DurationContext
		want    time.Duration
		wantErr error
	}{
		{name: "Should parse hours", text: "2h", ctx: ShiftContext, want: 2 * time.Hour},
		{name: "Should parse minutes for shift", text: "5m", ctx: ShiftContext, want: 300000 * time.Millisecond},
		{name: "Should parse days", text: "3d", ctx: ShiftContext, want: 3 * 24 * time.Hour},
		{name: "Should parse weeks", text: "2w", ctx: ShiftContext, want: 14 * 24 * time.Hour},
		{name: "Should parse months as 30 days for leave", text: "2mo", ctx: LeaveContext, want: 2 * 30 * 86400000 * time.Millisecond},
		{name: "Should parse days for leave", text: "10d", ctx: LeaveContext, want: 10 * 24 * time.Hour},
		{name: "Should ignore case and surrounding spaces", text: "  4H ", ctx: ShiftContext, want: 4 * time.Hour},
		{name: "Should accept a space between value and unit", text: "45 m", ctx: ShiftContext, want: 45 * time.Minute},
		{name: "Should accept uppercase months", text: "1MO", ctx: LeaveContext, want: 30 * 24 * time.Hour},
		{name: "Should reject minutes for leave", text: "5m", ctx: LeaveContext, wantErr: ErrMinutesNotAllowed},
		{name: "Should reject empty input", text: "", ctx: ShiftContext, wantErr: ErrInvalidDuration},
		{name: "Should reject missing unit", text: "30", ctx: ShiftContext, wantErr: ErrInvalidDuration},
		{name: "Should reject unknown unit", text: "3y", ctx: LeaveContext, wantErr: ErrInvalidDuration},
		{name: "Should reject fractional values", text: "1.5h", ctx: ShiftContext, wantErr: ErrInvalidDuration},
		{name: "Should reject negative values", text: "-1h", ctx: ShiftContext, wantErr: ErrInvalidDuration},
		{name: "Should reject zero", text: "0h", ctx: ShiftContext, wantErr: ErrInvalidDuration},
		{name: "Should reject trailing text", text: "2h30m", ctx: ShiftContext, wantErr: ErrInvalidDuration},
		{name: "Should reject overflowing values", text: "99999999999999999w", ctx: LeaveContext, wantErr: ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.text, tt.ctx)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDuration_UnitMultiples(t *testing.T) {
	units := map[string]time.Duration{
		"m": time.Minute,
		"h": time.Hour,
		"d": 24 * time.Hour,
		"w": 7 * 24 * time.Hour,
	}

	for unit, size := range units {
		for _, n := range []int{1, 7, 48, 120} {
			got, err := ParseDuration(strconv.Itoa(n)+unit, ShiftContext)
			require.NoError(t, err)
			assert.Equal(t, time.Duration(n)*size, got, "%d%s", n, unit)
		}
	}
}

func TestParseDuration_MinutesErrorIsAlsoInvalidDuration(t *testing.T) {
	_, err := ParseDuration("30m", LeaveContext)
	assert.ErrorIs(t, err, ErrMinutesNotAllowed)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ParseDuration("abc", LeaveContext)
	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.NotErrorIs(t, err, ErrMinutesNotAllowed)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{name: "zero", in: 0, want: "0 minutes"},
		{name: "negative", in: -time.Hour, want: "0 minutes"},
		{name: "under a minute", in: 59 * time.Second, want: "0 minutes"},
		{name: "one minute", in: time.Minute, want: "1 minute"},
		{name: "minutes", in: 45 * time.Minute, want: "45 minutes"},
		{name: "exact hour", in: time.Hour, want: "1 hour"},
		{name: "hour and a half", in: 90 * time.Minute, want: "1 hour, 30 minutes"},
		{name: "hours and one minute", in: 2*time.Hour + time.Minute, want: "2 hours, 1 minute"},
		{name: "day and hours", in: 26 * time.Hour, want: "1 day, 2 hours"},
		{name: "days floor minutes away", in: 3*24*time.Hour + 59*time.Minute, want: "3 days"},
		{name: "one week", in: 7 * 24 * time.Hour, want: "1 week"},
		{name: "weeks and days", in: 17 * 24 * time.Hour, want: "2 weeks, 3 days"},
		{name: "one month", in: 30 * 24 * time.Hour, want: "1 month"},
		{name: "months and day", in: 61 * 24 * time.Hour, want: "2 months, 1 day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 1, 1, 15, 4, 0, 0, time.UTC)

	got := FormatTimestamp(ts)

	assert.Equal(t, "<!date^1704121440^{date_short_pretty} at {time}|2024-01-01 15:04 UTC>", got)
}
