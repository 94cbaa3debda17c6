package entity

import "time"

// Organization is the isolation boundary for all staff state. It maps to a Slack team.
type Organization struct {
	TeamID    string
	Config    Config
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Config holds the per-organization settings. Role references are Slack user group IDs.
type Config struct {
	OnDutyGroupID         string
	LOAGroupID            string
	ManagementChannelID   string
	ReportChannelID       string
	ReportCooldownSeconds int
	ManagerGroupIDs       []string
	AllowedGroupIDs       []string
}

// ReportCooldown returns the configured report cooldown as a duration
func (c Config) ReportCooldown() time.Duration {
	return time.Duration(c.ReportCooldownSeconds) * time.Second
}
