package slackops

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

// Notifier posts plain messages. A user ID as target delivers to the app DM.
type Notifier struct {
	client contract.SlackClient
}

func NewNotifier(client contract.SlackClient) *Notifier {
	return &Notifier{client: client}
}

func (n *Notifier) Notify(ctx context.Context, target, message string) error {
	_, _, err := n.client.PostMessageContext(ctx, target,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to %s: %w", target, err)
	}
	return nil
}
