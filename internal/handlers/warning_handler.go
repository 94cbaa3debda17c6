package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	slackcmd "github.com/diegoclair/slack-shift-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

func (h *SlackHandler) handleWarn(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	reason := cmd.Rest(1)
	if len(cmd.Args) == 0 || reason == "" {
		return h.createErrorResponse("Use: `/staff warn @user <reason>`")
	}

	if denied := h.requireManager(ctx, slashCmd); denied != nil {
		return denied
	}

	userID, ok := slackcmd.ParseUserMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Please mention the member: `/staff warn @user <reason>`")
	}

	warning, err := h.staffService.AddWarning(ctx, slashCmd.TeamID, slashCmd.UserID, userID, reason)
	if err != nil {
		return h.serviceError("add the warning", slashCmd, err)
	}

	return ephemeral(fmt.Sprintf("⚠️ <@%s> has been warned. Warning ID: `%s`", userID, warning.ID))
}

func (h *SlackHandler) handleWarnings(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/staff warnings @user`")
	}

	if denied := h.requireStaff(ctx, slashCmd); denied != nil {
		return denied
	}

	userID, ok := slackcmd.ParseUserMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Please mention the member: `/staff warnings @user`")
	}

	warnings, err := h.staffService.ListWarnings(ctx, slashCmd.TeamID, userID)
	if err != nil {
		return h.serviceError("load warnings", slashCmd, err)
	}

	if len(warnings) == 0 {
		return ephemeral(fmt.Sprintf("✅ <@%s> has no warnings.", userID))
	}

	recent := warnings
	if len(recent) > domain.WarningListSize {
		recent = recent[len(recent)-domain.WarningListSize:]
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("⚠️ *Warnings for <@%s>* (total: %d)\n", userID, len(warnings)))
	for i, w := range recent {
		text.WriteString(fmt.Sprintf("%d. `%s` %s\n    _By <@%s> on %s_\n",
			i+1, w.ID, w.Reason, w.ModeratorID, domain.FormatTimestamp(w.CreatedAt)))
	}

	return ephemeral(text.String())
}

func (h *SlackHandler) handleUnwarn(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/staff unwarn <warning ID>`")
	}

	if denied := h.requireManager(ctx, slashCmd); denied != nil {
		return denied
	}

	warningID := strings.ToUpper(cmd.Args[0])
	if err := h.staffService.RemoveWarning(ctx, slashCmd.TeamID, warningID); err != nil {
		return h.serviceError("remove the warning", slashCmd, err)
	}

	return ephemeral(fmt.Sprintf("✅ Warning `%s` has been removed.", warningID))
}
