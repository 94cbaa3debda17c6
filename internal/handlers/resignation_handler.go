package handlers

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-shift-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

func (h *SlackHandler) handleResign(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	reason := cmd.Rest(0)
	if reason == "" {
		return h.createErrorResponse("Please give a reason: `/staff resign <reason>`")
	}

	if err := h.staffService.SubmitResignation(ctx, slashCmd.TeamID, slashCmd.UserID, reason); err != nil {
		return h.serviceError("submit the resignation", slashCmd, err)
	}

	return ephemeral("📄 Your resignation application has been sent to the managers for review.")
}

func (h *SlackHandler) handleResignation(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse(fmt.Sprintf("Use: `/staff resignation %s @user`", cmd.Sub))
	}

	if denied := h.requireManager(ctx, slashCmd); denied != nil {
		return denied
	}

	userID, ok := slackcmd.ParseUserMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse(fmt.Sprintf("Please mention the staff member: `/staff resignation %s @user`", cmd.Sub))
	}

	decision := entity.ResignationAccepted
	verb := "accepted"
	if cmd.Sub == slackcmd.SubDeny {
		decision = entity.ResignationDenied
		verb = "denied"
	}

	if err := h.staffService.DecideResignation(ctx, slashCmd.TeamID, slashCmd.UserID, userID, decision); err != nil {
		return h.serviceError("answer the resignation", slashCmd, err)
	}

	return ephemeral(fmt.Sprintf("The resignation application from <@%s> was %s.", userID, verb))
}
