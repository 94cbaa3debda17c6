package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// SubmitResignation posts a resignation application to the management channel.
// Nothing is stored, so a failed delivery is returned to the caller.
func (s *staffService) SubmitResignation(ctx context.Context, teamID, userID, reason string) error {
	org, err := ensureOrganization(ctx, s.dm, teamID)
	if err != nil {
		return err
	}

	if org.Config.ManagementChannelID == "" {
		return domain.ErrManagementChannelNotConfigured
	}

	intent := notifyIntent(teamID, userID, org.Config.ManagementChannelID, resignationApplicationMessage(userID, strings.TrimSpace(reason)))
	if err := s.effects.run(ctx, intent); err != nil {
		return err
	}

	s.log.Info("resignation submitted", zap.String("team_id", teamID), zap.String("user_id", userID))
	return nil
}

// DecideResignation tells the applicant how a manager answered
func (s *staffService) DecideResignation(ctx context.Context, teamID, managerID, userID string, decision entity.ResignationDecision) error {
	if !decision.Valid() {
		return fmt.Errorf("unknown resignation decision %q. Use accept or deny", decision)
	}

	intent := notifyIntent(teamID, userID, "", resignationDecisionMessage(managerID, decision))
	if err := s.effects.run(ctx, intent); err != nil {
		return err
	}

	s.log.Info("resignation decided",
		zap.String("team_id", teamID),
		zap.String("manager_id", managerID),
		zap.String("user_id", userID),
		zap.String("decision", string(decision)),
	)
	return nil
}
