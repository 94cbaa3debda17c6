package service

import (
	"context"
	"strings"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"go.uber.org/zap"
)

// SubmitReport posts a user report to the report channel, rate limited per member
func (s *staffService) SubmitReport(ctx context.Context, teamID, reporterID, targetID, reason string) error {
	org, err := ensureOrganization(ctx, s.dm, teamID)
	if err != nil {
		return err
	}

	if org.Config.ReportChannelID == "" {
		return domain.ErrReportChannelNotConfigured
	}

	remaining, ok := s.cooldowns.Acquire(teamID, reporterID, org.Config.ReportCooldown(), s.now())
	if !ok {
		return &domain.CooldownError{Remaining: remaining}
	}

	intent := notifyIntent(teamID, reporterID, org.Config.ReportChannelID, reportMessage(reporterID, targetID, strings.TrimSpace(reason)))
	if err := s.effects.run(ctx, intent); err != nil {
		s.cooldowns.Release(teamID, reporterID)
		return err
	}

	s.log.Info("report submitted",
		zap.String("team_id", teamID),
		zap.String("reporter_id", reporterID),
		zap.String("target_id", targetID),
	)
	return nil
}
