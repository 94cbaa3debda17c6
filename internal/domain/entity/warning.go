package entity

import "time"

// Warning is a moderator's formal warning against a member. ID is a short
// code members can quote, unique within the organization.
type Warning struct {
	ID          string
	TeamID      string
	UserID      string
	ModeratorID string
	Reason      string
	CreatedAt   time.Time
}

// ResignationDecision is a manager's answer to a resignation application
type ResignationDecision string

const (
	ResignationAccepted ResignationDecision = "accept"
	ResignationDenied   ResignationDecision = "deny"
)

func (d ResignationDecision) Valid() bool {
	return d == ResignationAccepted || d == ResignationDenied
}
