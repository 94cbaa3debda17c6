package entity

import "time"

// StaffStats accumulates forever per member
type StaffStats struct {
	TeamID        string
	UserID        string
	TotalMessages int64
	TotalDuration time.Duration
	TotalBans     int64
	TotalKicks    int64
}

// ModerationAction is a moderation action whose count is kept in StaffStats
type ModerationAction string

const (
	ModerationBan  ModerationAction = "ban"
	ModerationKick ModerationAction = "kick"
)

// Valid reports whether the action is one we keep counters for
func (a ModerationAction) Valid() bool {
	return a == ModerationBan || a == ModerationKick
}

// ModerationLogEntry is one row of the bounded per-organization moderation log
type ModerationLogEntry struct {
	ID          string
	TeamID      string
	Action      ModerationAction
	ModeratorID string
	TargetID    string
	Reason      string
	CreatedAt   time.Time
}

// LeaderboardSort selects the leaderboard ordering
type LeaderboardSort string

const (
	SortByDuration LeaderboardSort = "duration"
	SortByMessages LeaderboardSort = "messages"
)
