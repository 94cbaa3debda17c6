package domain

import "time"

// Reconciliation cadence and windows
const (
	// CheckInterval is how often the reconciliation sweep runs
	CheckInterval = 30 * time.Second

	// ReminderWindow is how long before a shift ends the member is reminded
	ReminderWindow = 5 * time.Minute

	// SideEffectTimeout bounds a single role change or message delivery
	SideEffectTimeout = 10 * time.Second
)

// Retention limits per organization
const (
	ShiftHistoryLimit  = 100
	ModerationLogLimit = 100
)

// DefaultReportCooldownSeconds is applied to newly created organizations
const DefaultReportCooldownSeconds = 60

// Warning IDs are WarningIDLength base36 characters
const (
	WarningIDLength = 6

	// WarningListSize is the number of most recent warnings shown for a member
	WarningListSize = 10
)

// LeaderboardSize is the number of rows shown by the stats command
const LeaderboardSize = 10

const (
	Day   = 24 * time.Hour
	Week  = 7 * Day
	Month = 30 * Day
)
