package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrInvalidDuration is returned when a duration expression does not match the grammar
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrMinutesNotAllowed is returned when a leave duration is expressed in minutes
	ErrMinutesNotAllowed = fmt.Errorf("%w: leave cannot be expressed in minutes", ErrInvalidDuration)

	ErrAlreadyOnShift = errors.New("member is already on shift")
	ErrNotOnShift     = errors.New("member is not on shift")
	ErrAlreadyOnLeave = errors.New("member already has an active leave of absence")
	ErrNoActiveLeave  = errors.New("member has no active leave of absence")

	// ErrOnLeave is returned when a shift is requested while an LOA record with a future end exists
	ErrOnLeave = errors.New("member is on leave of absence")

	// ErrLeaveRoleHeld is returned when the member holds the LOA marker but no LOA record exists
	ErrLeaveRoleHeld = errors.New("member holds the leave of absence role")

	ErrManagementChannelNotConfigured = errors.New("management channel is not configured")
	ErrReportChannelNotConfigured     = errors.New("report channel is not configured")
	ErrReportCooldown                 = errors.New("report cooldown is active")

	ErrWarningNotFound = errors.New("warning not found")

	// ErrWarningIDTaken is returned when a generated warning ID already exists in the organization
	ErrWarningIDTaken = errors.New("warning id already in use")

	ErrNotPermitted  = errors.New("member is not permitted to run this command")
	ErrInvalidConfig = errors.New("invalid configuration value")

	// ErrStoreUnavailable wraps persistence failures
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrSideEffectFailed wraps role or notification delivery failures
	ErrSideEffectFailed = errors.New("side effect failed")
)

// CooldownError carries the time left before the member may report again
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: %d seconds left", ErrReportCooldown, e.Seconds())
}

func (e *CooldownError) Unwrap() error {
	return ErrReportCooldown
}

// Seconds rounds the remaining time up so a member is never told to wait 0 seconds
func (e *CooldownError) Seconds() int64 {
	return int64(math.Ceil(e.Remaining.Seconds()))
}
