package entity

// IntentKind identifies a platform side effect
type IntentKind string

const (
	IntentNotify     IntentKind = "notify"
	IntentGrantRole  IntentKind = "grant_role"
	IntentRevokeRole IntentKind = "revoke_role"
)

// Intent is a side effect produced by a lifecycle transition. Intents are
// executed after the state change is persisted and their failure never
// rolls the state back.
type Intent struct {
	Kind    IntentKind
	TeamID  string
	UserID  string
	RoleID  string
	Target  string // channel or user receiving a notification; defaults to UserID
	Message string
}

// Recipient returns where a notification must be delivered
func (i Intent) Recipient() string {
	if i.Target != "" {
		return i.Target
	}
	return i.UserID
}
