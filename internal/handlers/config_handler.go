package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-shift-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

func (h *SlackHandler) handleConfig(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if denied := h.requireManager(ctx, slashCmd); denied != nil {
		return denied
	}

	if len(cmd.Args) == 0 || strings.EqualFold(cmd.Args[0], "show") {
		org, err := h.staffService.SetupOrganization(ctx, slashCmd.TeamID)
		if err != nil {
			return h.serviceError("load settings", slashCmd, err)
		}
		return ephemeral(formatConfig(org.Config))
	}

	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Use: `/staff config <setting> <value>`. Run `/staff help` to see the settings")
	}

	configType := strings.ToLower(cmd.Args[0])
	cfg, err := h.staffService.UpdateConfig(ctx, slashCmd.TeamID, configType, cmd.Rest(1))
	if err != nil {
		return h.serviceError("update settings", slashCmd, err)
	}

	return ephemeral("✅ Settings updated\n\n" + formatConfig(*cfg))
}

func formatConfig(cfg entity.Config) string {
	var text strings.Builder
	text.WriteString("⚙️ *Staff settings:*\n")
	text.WriteString(fmt.Sprintf("• *On-duty group:* %s\n", groupRef(cfg.OnDutyGroupID)))
	text.WriteString(fmt.Sprintf("• *Leave group:* %s\n", groupRef(cfg.LOAGroupID)))
	text.WriteString(fmt.Sprintf("• *Management channel:* %s\n", channelRef(cfg.ManagementChannelID)))
	text.WriteString(fmt.Sprintf("• *Report channel:* %s\n", channelRef(cfg.ReportChannelID)))
	text.WriteString(fmt.Sprintf("• *Report cooldown:* %d seconds\n", cfg.ReportCooldownSeconds))
	text.WriteString(fmt.Sprintf("• *Manager groups:* %s\n", groupList(cfg.ManagerGroupIDs, "everyone")))
	text.WriteString(fmt.Sprintf("• *Allowed groups:* %s", groupList(cfg.AllowedGroupIDs, "everyone")))
	return text.String()
}

func groupRef(id string) string {
	if id == "" {
		return "not set"
	}
	return fmt.Sprintf("<!subteam^%s>", id)
}

func channelRef(id string) string {
	if id == "" {
		return "not set"
	}
	return fmt.Sprintf("<#%s>", id)
}

func groupList(ids []string, empty string) string {
	if len(ids) == 0 {
		return empty
	}
	refs := make([]string, len(ids))
	for i, id := range ids {
		refs[i] = groupRef(id)
	}
	return strings.Join(refs, ", ")
}
