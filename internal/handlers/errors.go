package handlers

import (
	"errors"
	"fmt"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// serviceError turns a service failure into the message the member sees.
// Unexpected failures are logged with the action that caused them.
func (h *SlackHandler) serviceError(action string, slashCmd *slack.SlashCommand, err error) *slack.Msg {
	var cooldown *domain.CooldownError

	switch {
	case errors.As(err, &cooldown):
		return h.createErrorResponse(fmt.Sprintf("Please wait %d seconds before submitting another report", cooldown.Seconds()))
	case errors.Is(err, domain.ErrMinutesNotAllowed):
		return h.createErrorResponse("A leave of absence cannot be expressed in minutes. Use days, weeks or months, e.g. `3d`, `1w` or `1mo`")
	case errors.Is(err, domain.ErrInvalidDuration):
		return h.createErrorResponse("Invalid duration. Use a whole number followed by a unit, e.g. `30m`, `2h`, `1d` or `1w`")
	case errors.Is(err, domain.ErrAlreadyOnShift):
		return h.createErrorResponse("Already on shift. End the current shift with `/staff shift end` first")
	case errors.Is(err, domain.ErrNotOnShift):
		return h.createErrorResponse("Not on shift. Start one with `/staff shift start <duration>`")
	case errors.Is(err, domain.ErrOnLeave):
		return h.createErrorResponse("You are on leave of absence and cannot start a shift. Use `/staff loa end` to end your leave early")
	case errors.Is(err, domain.ErrLeaveRoleHeld):
		return h.createErrorResponse("You still hold the leave of absence group but have no active leave. Ask a manager to remove you from the group before starting a shift")
	case errors.Is(err, domain.ErrAlreadyOnLeave):
		return h.createErrorResponse("There is already an active leave of absence")
	case errors.Is(err, domain.ErrNoActiveLeave):
		return h.createErrorResponse("There is no active leave of absence")
	case errors.Is(err, domain.ErrManagementChannelNotConfigured):
		return h.createErrorResponse("The management channel is not configured. Ask a manager to run `/staff config management #channel`")
	case errors.Is(err, domain.ErrReportChannelNotConfigured):
		return h.createErrorResponse("The report channel is not configured. Ask a manager to run `/staff config reports #channel`")
	case errors.Is(err, domain.ErrWarningNotFound):
		return h.createErrorResponse("Could not find a warning with that ID")
	case errors.Is(err, domain.ErrInvalidConfig):
		return h.createErrorResponse(err.Error())
	case errors.Is(err, domain.ErrNotPermitted):
		return h.createErrorResponse("You are not allowed to use this command")
	case errors.Is(err, domain.ErrSideEffectFailed):
		h.logFailure(action, slashCmd, err)
		return h.createErrorResponse("Slack did not accept the message. Please try again")
	default:
		h.logFailure(action, slashCmd, err)
		return h.createErrorResponse(fmt.Sprintf("Failed to %s. Please try again later", action))
	}
}

func (h *SlackHandler) logFailure(action string, slashCmd *slack.SlashCommand, err error) {
	h.log.Error("command failed",
		zap.String("action", action),
		zap.String("team_id", slashCmd.TeamID),
		zap.String("user_id", slashCmd.UserID),
		zap.Error(err),
	)
}
