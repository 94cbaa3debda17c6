package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	slackcmd "github.com/diegoclair/slack-shift-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

func (h *SlackHandler) handleShift(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Sub {
	case slackcmd.SubStart:
		return h.handleShiftStart(ctx, cmd, slashCmd)
	case slackcmd.SubExtend:
		return h.handleShiftExtend(ctx, cmd, slashCmd)
	case slackcmd.SubEnd:
		return h.handleShiftEnd(ctx, slashCmd)
	default:
		return h.handleShiftStatus(ctx, slashCmd)
	}
}

func (h *SlackHandler) handleShiftStart(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please provide a duration: `/staff shift start 2h`")
	}

	if denied := h.requireStaff(ctx, slashCmd); denied != nil {
		return denied
	}

	label := strings.ToLower(cmd.Args[0])
	duration, err := domain.ParseDuration(label, domain.ShiftContext)
	if err != nil {
		return h.serviceError("start shift", slashCmd, err)
	}

	shift, err := h.staffService.StartShift(ctx, slashCmd.TeamID, slashCmd.UserID, duration, label)
	if err != nil {
		return h.serviceError("start shift", slashCmd, err)
	}

	return inChannel(fmt.Sprintf("🟢 <@%s> is now *on shift* for %s (until %s)",
		slashCmd.UserID, domain.FormatDuration(duration), domain.FormatTimestamp(shift.EndTime)))
}

func (h *SlackHandler) handleShiftExtend(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please provide how much time to add: `/staff shift extend 30m`")
	}

	extension, err := domain.ParseDuration(cmd.Args[0], domain.ShiftContext)
	if err != nil {
		return h.serviceError("extend shift", slashCmd, err)
	}

	shift, err := h.staffService.ExtendShift(ctx, slashCmd.TeamID, slashCmd.UserID, extension)
	if err != nil {
		return h.serviceError("extend shift", slashCmd, err)
	}

	return ephemeral(fmt.Sprintf("⏱️ Shift extended by %s. It now ends %s",
		domain.FormatDuration(extension), domain.FormatTimestamp(shift.EndTime)))
}

func (h *SlackHandler) handleShiftEnd(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	closed, err := h.staffService.EndShift(ctx, slashCmd.TeamID, slashCmd.UserID)
	if err != nil {
		return h.serviceError("end shift", slashCmd, err)
	}

	return inChannel(fmt.Sprintf("🔴 <@%s> is now *off shift* after %s (%d messages)",
		slashCmd.UserID, domain.FormatDuration(closed.Elapsed), closed.Entry.Messages))
}

func (h *SlackHandler) handleShiftStatus(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	shift, err := h.staffService.GetShift(ctx, slashCmd.TeamID, slashCmd.UserID)
	if err != nil {
		return h.serviceError("load shift", slashCmd, err)
	}

	if shift == nil {
		return ephemeral("You are not on shift. Use `/staff shift start <duration>` to start one.")
	}

	now := h.now()
	return ephemeral(fmt.Sprintf("🟢 *On shift* since %s\n⏳ *Time left:* %s (ends %s)\n💬 *Messages:* %d",
		domain.FormatTimestamp(shift.StartTime),
		domain.FormatDuration(shift.Remaining(now)),
		domain.FormatTimestamp(shift.EndTime),
		shift.Messages,
	))
}

func (h *SlackHandler) handleActive(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	shifts, err := h.staffService.ListActiveShifts(ctx, slashCmd.TeamID)
	if err != nil {
		return h.serviceError("list active shifts", slashCmd, err)
	}

	if len(shifts) == 0 {
		return ephemeral("Nobody is on shift right now.")
	}

	now := h.now()
	var list strings.Builder
	list.WriteString(fmt.Sprintf("*Staff on shift (%d):*\n", len(shifts)))
	for i, shift := range shifts {
		remaining := "Overtime"
		if !shift.Expired(now) {
			remaining = domain.FormatDuration(shift.Remaining(now)) + " left"
		}
		list.WriteString(fmt.Sprintf("%d. <@%s> - on for %s, %s, %d messages\n",
			i+1, shift.UserID, domain.FormatDuration(now.Sub(shift.StartTime)), remaining, shift.Messages))
	}

	return ephemeral(list.String())
}
