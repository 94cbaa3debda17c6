package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/slack-go/slack/slackevents"
	"go.uber.org/zap"
)

// HandleEvents receives Events API callbacks. Messages from members on shift
// are counted; everything else is acknowledged and ignored.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, status := h.verifyRequest(r)
	if status != http.StatusOK {
		w.WriteHeader(status)
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		// acknowledged anyway so Slack does not retry events we cannot read
		h.log.Warn("failed to parse event", zap.Error(err))
		w.WriteHeader(http.StatusOK)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		challenge, ok := event.Data.(*slackevents.EventsAPIURLVerificationEvent)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(challenge.Challenge))
		return

	case slackevents.CallbackEvent:
		msg, ok := event.InnerEvent.Data.(*slackevents.MessageEvent)
		if ok && msg.User != "" && msg.BotID == "" && msg.SubType == "" {
			if err := h.staffService.IncrementMessageCount(r.Context(), event.TeamID, msg.User); err != nil {
				h.log.Error("failed to count message",
					zap.String("team_id", event.TeamID),
					zap.String("user_id", msg.User),
					zap.Error(err),
				)
			}
		}
	}

	w.WriteHeader(http.StatusOK)
}
