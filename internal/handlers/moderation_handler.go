package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-shift-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

const defaultModLogLimit = 10

func (h *SlackHandler) handleStats(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) > 0 {
		if userID, ok := slackcmd.ParseUserMention(cmd.Args[0]); ok {
			return h.handleMemberStats(ctx, userID, slashCmd)
		}
	}

	sortBy := entity.SortByDuration
	if len(cmd.Args) > 0 && strings.EqualFold(cmd.Args[0], string(entity.SortByMessages)) {
		sortBy = entity.SortByMessages
	}

	board, err := h.staffService.Leaderboard(ctx, slashCmd.TeamID, sortBy)
	if err != nil {
		return h.serviceError("load the leaderboard", slashCmd, err)
	}

	own, err := h.staffService.GetStats(ctx, slashCmd.TeamID, slashCmd.UserID)
	if err != nil {
		return h.serviceError("load statistics", slashCmd, err)
	}

	var text strings.Builder
	if len(board) == 0 {
		text.WriteString("No shifts have been recorded yet.\n")
	} else {
		text.WriteString(fmt.Sprintf("🏆 *Staff leaderboard by %s:*\n", sortBy))
		for i, stats := range board {
			text.WriteString(fmt.Sprintf("%d. <@%s> - %s, %d messages\n",
				i+1, stats.UserID, domain.FormatDuration(stats.TotalDuration), stats.TotalMessages))
		}
	}
	text.WriteString(fmt.Sprintf("\n*You:* %s on shift, %d messages", domain.FormatDuration(own.TotalDuration), own.TotalMessages))

	return ephemeral(text.String())
}

func (h *SlackHandler) handleMemberStats(ctx context.Context, userID string, slashCmd *slack.SlashCommand) *slack.Msg {
	stats, err := h.staffService.GetStats(ctx, slashCmd.TeamID, userID)
	if err != nil {
		return h.serviceError("load statistics", slashCmd, err)
	}

	return ephemeral(fmt.Sprintf("📊 *Statistics for <@%s>:*\n⏱️ *Time on shift:* %s\n💬 *Messages:* %d\n🔨 *Bans:* %d\n👢 *Kicks:* %d",
		userID,
		domain.FormatDuration(stats.TotalDuration),
		stats.TotalMessages,
		stats.TotalBans,
		stats.TotalKicks,
	))
}

func (h *SlackHandler) handleRecord(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 3 {
		return h.createErrorResponse("Use: `/staff record ban|kick @user <reason>`")
	}

	if denied := h.requireManager(ctx, slashCmd); denied != nil {
		return denied
	}

	action := entity.ModerationAction(strings.ToLower(cmd.Args[0]))
	if !action.Valid() {
		return h.createErrorResponse("Unknown action. Use `ban` or `kick`")
	}

	targetID, ok := slackcmd.ParseUserMention(cmd.Args[1])
	if !ok {
		return h.createErrorResponse("Please mention the user: `/staff record ban @user <reason>`")
	}

	entry, err := h.staffService.RecordModerationAction(ctx, slashCmd.TeamID, slashCmd.UserID, action, targetID, cmd.Rest(2))
	if err != nil {
		return h.serviceError("record the action", slashCmd, err)
	}

	return ephemeral(fmt.Sprintf("📝 Recorded %s of <@%s>: %s", entry.Action, entry.TargetID, entry.Reason))
}

func (h *SlackHandler) handleModLog(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/staff modlog ban|kick [count]`")
	}

	if denied := h.requireManager(ctx, slashCmd); denied != nil {
		return denied
	}

	action := entity.ModerationAction(strings.ToLower(cmd.Args[0]))
	if !action.Valid() {
		return h.createErrorResponse("Unknown action. Use `ban` or `kick`")
	}

	limit := defaultModLogLimit
	if len(cmd.Args) > 1 {
		n, err := strconv.Atoi(cmd.Args[1])
		if err != nil || n <= 0 {
			return h.createErrorResponse("The count must be a positive number")
		}
		limit = n
	}

	entries, err := h.staffService.ListModerationLog(ctx, slashCmd.TeamID, action, limit)
	if err != nil {
		return h.serviceError("load the moderation log", slashCmd, err)
	}

	if len(entries) == 0 {
		return ephemeral(fmt.Sprintf("No %s actions have been recorded.", action))
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("*Latest %s actions:*\n", action))
	for _, entry := range entries {
		text.WriteString(fmt.Sprintf("• %s <@%s> by <@%s>: %s\n",
			domain.FormatTimestamp(entry.CreatedAt), entry.TargetID, entry.ModeratorID, entry.Reason))
	}

	return ephemeral(text.String())
}

func (h *SlackHandler) handleReport(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	reason := cmd.Rest(1)
	if len(cmd.Args) == 0 || reason == "" {
		return h.createErrorResponse("Use: `/staff report @user <reason>`")
	}

	targetID, ok := slackcmd.ParseUserMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Please mention the user you are reporting: `/staff report @user <reason>`")
	}

	if err := h.staffService.SubmitReport(ctx, slashCmd.TeamID, slashCmd.UserID, targetID, reason); err != nil {
		return h.serviceError("submit the report", slashCmd, err)
	}

	return ephemeral("🚨 Thank you, your report has been sent to the staff team.")
}
