package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/slack-shift-bot/internal/domain/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	staffService  contract.StaffService
	signingSecret string
	now           func() time.Time
	log           *zap.Logger
}

func New(staffService contract.StaffService, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		staffService:  staffService,
		signingSecret: signingSecret,
		now:           func() time.Time { return time.Now().UTC() },
		log:           log,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if _, status := h.verifyRequest(r); status != http.StatusOK {
		w.WriteHeader(status)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.writeResponse(w, h.createErrorResponse(err.Error()))
		return
	}

	h.writeResponse(w, h.handleCommand(r.Context(), cmd, &s))
}

// verifyRequest checks the Slack signature and restores the body for later parsing
func (h *SlackHandler) verifyRequest(r *http.Request) ([]byte, int) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, http.StatusBadRequest
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		return nil, http.StatusUnauthorized
	}

	if _, err := verifier.Write(body); err != nil {
		return nil, http.StatusInternalServerError
	}

	if err := verifier.Ensure(); err != nil {
		return nil, http.StatusUnauthorized
	}

	return body, http.StatusOK
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdShift:
		return h.handleShift(ctx, cmd, slashCmd)
	case slackcmd.CmdActive:
		return h.handleActive(ctx, slashCmd)
	case slackcmd.CmdLOA:
		return h.handleLOA(ctx, cmd, slashCmd)
	case slackcmd.CmdStats:
		return h.handleStats(ctx, cmd, slashCmd)
	case slackcmd.CmdRecord:
		return h.handleRecord(ctx, cmd, slashCmd)
	case slackcmd.CmdModLog:
		return h.handleModLog(ctx, cmd, slashCmd)
	case slackcmd.CmdReport:
		return h.handleReport(ctx, cmd, slashCmd)
	case slackcmd.CmdWarn:
		return h.handleWarn(ctx, cmd, slashCmd)
	case slackcmd.CmdWarnings:
		return h.handleWarnings(ctx, cmd, slashCmd)
	case slackcmd.CmdUnwarn:
		return h.handleUnwarn(ctx, cmd, slashCmd)
	case slackcmd.CmdResign:
		return h.handleResign(ctx, cmd, slashCmd)
	case slackcmd.CmdResignation:
		return h.handleResignation(ctx, cmd, slashCmd)
	case slackcmd.CmdConfig:
		return h.handleConfig(ctx, cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command. Use `/staff help` to see the available commands")
	}
}

// requireManager returns an error response when the caller may not manage staff
func (h *SlackHandler) requireManager(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	ok, err := h.staffService.CanManage(ctx, slashCmd.TeamID, slashCmd.UserID)
	if err != nil {
		return h.serviceError("check permissions", slashCmd, err)
	}
	if !ok {
		return h.createErrorResponse("Only managers can use this command")
	}
	return nil
}

// requireStaff returns an error response when the caller may not take shifts or apply for leave
func (h *SlackHandler) requireStaff(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	ok, err := h.staffService.CanUseShiftCommands(ctx, slashCmd.TeamID, slashCmd.UserID)
	if err != nil {
		return h.serviceError("check permissions", slashCmd, err)
	}
	if !ok {
		return h.createErrorResponse("You are not allowed to use staff shift commands")
	}
	return nil
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func ephemeral(text string) *slack.Msg {
	return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: text}
}

func inChannel(text string) *slack.Msg {
	return &slack.Msg{ResponseType: slack.ResponseTypeInChannel, Text: text}
}

func (h *SlackHandler) writeResponse(w http.ResponseWriter, response *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("failed to write response", zap.Error(err))
	}
}
