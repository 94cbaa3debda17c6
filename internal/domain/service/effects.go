package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// effects executes intents against the platform. Every call is bounded by timeout
// and a failure never undoes the state change that produced the intent.
type effects struct {
	roles    contract.RoleSync
	notifier contract.Notifier
	timeout  time.Duration
	log      *zap.Logger
}

func newEffects(roles contract.RoleSync, notifier contract.Notifier, timeout time.Duration, log *zap.Logger) *effects {
	return &effects{
		roles:    roles,
		notifier: notifier,
		timeout:  timeout,
		log:      log,
	}
}

// Execute runs the intents in order and returns how many failed
func (e *effects) Execute(ctx context.Context, intents []entity.Intent) int {
	failed := 0
	for _, intent := range intents {
		if err := e.run(ctx, intent); err != nil {
			failed++
			e.log.Warn("side effect failed",
				zap.String("kind", string(intent.Kind)),
				zap.String("team_id", intent.TeamID),
				zap.String("user_id", intent.UserID),
				zap.Error(err),
			)
		}
	}
	return failed
}

func (e *effects) run(ctx context.Context, intent entity.Intent) error {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var err error
	switch intent.Kind {
	case entity.IntentNotify:
		err = e.notifier.Notify(ctx, intent.Recipient(), intent.Message)
	case entity.IntentGrantRole:
		if intent.RoleID == "" {
			return nil
		}
		err = e.roles.Grant(ctx, intent.RoleID, intent.UserID)
	case entity.IntentRevokeRole:
		if intent.RoleID == "" {
			return nil
		}
		err = e.roles.Revoke(ctx, intent.RoleID, intent.UserID)
	default:
		err = fmt.Errorf("unknown intent kind %q", intent.Kind)
	}

	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrSideEffectFailed, intent.Kind, err)
	}
	return nil
}

func notifyIntent(teamID, userID, target, message string) entity.Intent {
	return entity.Intent{Kind: entity.IntentNotify, TeamID: teamID, UserID: userID, Target: target, Message: message}
}

func grantIntent(teamID, userID, roleID string) entity.Intent {
	return entity.Intent{Kind: entity.IntentGrantRole, TeamID: teamID, UserID: userID, RoleID: roleID}
}

func revokeIntent(teamID, userID, roleID string) entity.Intent {
	return entity.Intent{Kind: entity.IntentRevokeRole, TeamID: teamID, UserID: userID, RoleID: roleID}
}
