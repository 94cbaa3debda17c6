package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	slackcmd "github.com/diegoclair/slack-shift-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

func (h *SlackHandler) handleLOA(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Sub {
	case slackcmd.SubRequest:
		return h.handleLOARequest(ctx, cmd, slashCmd)
	case slackcmd.SubApprove:
		return h.handleLOAApprove(ctx, cmd, slashCmd)
	case slackcmd.SubDeny:
		return h.handleLOADeny(ctx, cmd, slashCmd)
	default:
		return h.handleLOAEnd(ctx, slashCmd)
	}
}

func (h *SlackHandler) handleLOARequest(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	reason := cmd.Rest(1)
	if len(cmd.Args) == 0 || reason == "" {
		return h.createErrorResponse("Please provide a duration and a reason: `/staff loa request 1w family trip`")
	}

	if denied := h.requireStaff(ctx, slashCmd); denied != nil {
		return denied
	}

	label := strings.ToLower(cmd.Args[0])
	duration, err := domain.ParseDuration(label, domain.LeaveContext)
	if err != nil {
		return h.serviceError("request leave", slashCmd, err)
	}

	if _, err := h.staffService.RequestLOA(ctx, slashCmd.TeamID, slashCmd.UserID, duration, label, reason); err != nil {
		return h.serviceError("request leave", slashCmd, err)
	}

	return ephemeral(fmt.Sprintf("📨 Your leave of absence application for %s has been sent to the managers.", domain.FormatDuration(duration)))
}

func (h *SlackHandler) handleLOAApprove(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Use: `/staff loa approve @user <duration> [reason]`")
	}

	if denied := h.requireManager(ctx, slashCmd); denied != nil {
		return denied
	}

	userID, ok := slackcmd.ParseUserMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Please mention the staff member: `/staff loa approve @user 1w`")
	}

	duration, err := domain.ParseDuration(cmd.Args[1], domain.LeaveContext)
	if err != nil {
		return h.serviceError("approve leave", slashCmd, err)
	}

	loa, err := h.staffService.StartLOA(ctx, slashCmd.TeamID, userID, h.now().Add(duration), cmd.Rest(2))
	if err != nil {
		return h.serviceError("approve leave", slashCmd, err)
	}

	return inChannel(fmt.Sprintf("✅ <@%s> approved a leave of absence for <@%s> until %s",
		slashCmd.UserID, userID, domain.FormatTimestamp(loa.EndTime)))
}

func (h *SlackHandler) handleLOADeny(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/staff loa deny @user`")
	}

	if denied := h.requireManager(ctx, slashCmd); denied != nil {
		return denied
	}

	userID, ok := slackcmd.ParseUserMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Please mention the staff member: `/staff loa deny @user`")
	}

	if err := h.staffService.DenyLOA(ctx, slashCmd.TeamID, slashCmd.UserID, userID); err != nil {
		return h.serviceError("deny leave", slashCmd, err)
	}

	return ephemeral(fmt.Sprintf("The leave of absence application from <@%s> was denied.", userID))
}

func (h *SlackHandler) handleLOAEnd(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	closed, err := h.staffService.EndLOA(ctx, slashCmd.TeamID, slashCmd.UserID)
	if err != nil {
		return h.serviceError("end leave", slashCmd, err)
	}

	return ephemeral(fmt.Sprintf("👋 Welcome back! Your leave ended after %s of the %s approved.\n*Started:* %s\n*Was scheduled to end:* %s",
		domain.FormatDuration(closed.Actual),
		domain.FormatDuration(closed.Scheduled),
		domain.FormatTimestamp(closed.LOA.StartTime),
		domain.FormatTimestamp(closed.LOA.EndTime),
	))
}
