package entity

import "time"

// LOA is an active leave of absence
type LOA struct {
	TeamID        string
	UserID        string
	StartTime     time.Time
	EndTime       time.Time
	Reason        string
	DurationLabel string
	Notified      bool
}

// ActiveAt reports whether the leave still blocks shifts at the given instant.
// Only the end time matters; an expired record that has not been reconciled yet does not block.
func (l *LOA) ActiveAt(now time.Time) bool {
	return l.EndTime.After(now)
}

// ClosedLOA summarizes a leave that was ended early by the member
type ClosedLOA struct {
	LOA       LOA
	EndedAt   time.Time
	Actual    time.Duration
	Scheduled time.Duration
}

// LOARequest is a pending application posted to the management channel
type LOARequest struct {
	TeamID   string
	UserID   string
	Duration time.Duration
	Label    string
	Reason   string
	EndTime  time.Time
}
