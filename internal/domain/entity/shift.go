package entity

import "time"

// Shift is an active work session. A member holds at most one per organization.
type Shift struct {
	TeamID        string
	UserID        string
	StartTime     time.Time
	EndTime       time.Time
	DurationLabel string
	Reminded      bool
	Messages      int64
}

// Remaining returns the time left until the scheduled end; zero or negative once expired
func (s *Shift) Remaining(now time.Time) time.Duration {
	return s.EndTime.Sub(now)
}

// Expired reports whether the shift has reached its scheduled end. The boundary is inclusive.
func (s *Shift) Expired(now time.Time) bool {
	return s.Remaining(now) <= 0
}

// ShiftHistoryEntry is an immutable snapshot of a completed shift
type ShiftHistoryEntry struct {
	ID               int64
	TeamID           string
	UserID           string
	StartTime        time.Time
	EndTime          time.Time
	ScheduledEndTime time.Time
	DurationLabel    string
	Messages         int64
}

// Duration is the actual time spent on shift
func (h *ShiftHistoryEntry) Duration() time.Duration {
	return h.EndTime.Sub(h.StartTime)
}

// ClosedShift is returned when a shift ends, manually or by expiry
type ClosedShift struct {
	Entry   ShiftHistoryEntry
	Elapsed time.Duration
}

// ShiftEligibility exposes the signals that decide whether a member may start a shift.
// HasLOARecord and HasLOARole are kept apart because they can disagree when the
// user group is edited by hand.
type ShiftEligibility struct {
	OnShift      *Shift
	HasLOARecord bool
	LOA          *LOA
	HasLOARole   bool
}
