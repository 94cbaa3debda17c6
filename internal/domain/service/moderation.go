package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *staffService) RecordModerationAction(ctx context.Context, teamID, moderatorID string, action entity.ModerationAction, targetID, reason string) (*entity.ModerationLogEntry, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("unknown moderation action %q. Use ban or kick", action)
	}

	if _, err := ensureOrganization(ctx, s.dm, teamID); err != nil {
		return nil, err
	}

	entry := &entity.ModerationLogEntry{
		ID:          uuid.NewString(),
		TeamID:      teamID,
		Action:      action,
		ModeratorID: moderatorID,
		TargetID:    targetID,
		Reason:      strings.TrimSpace(reason),
		CreatedAt:   s.now(),
	}
	if err := s.dm.Stats().RecordModeration(ctx, entry); err != nil {
		return nil, storeErr(err)
	}

	s.log.Info("moderation action recorded",
		zap.String("team_id", teamID),
		zap.String("moderator_id", moderatorID),
		zap.String("action", string(action)),
		zap.String("target_id", targetID),
	)
	return entry, nil
}

func (s *staffService) ListModerationLog(ctx context.Context, teamID string, action entity.ModerationAction, limit int) ([]*entity.ModerationLogEntry, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("unknown moderation action %q. Use ban or kick", action)
	}
	if limit <= 0 || limit > domain.ModerationLogLimit {
		limit = domain.ModerationLogLimit
	}

	entries, err := s.dm.Stats().ListModeration(ctx, teamID, action, limit)
	if err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

// Leaderboard returns the top members by total shift duration or by messages
func (s *staffService) Leaderboard(ctx context.Context, teamID string, sortBy entity.LeaderboardSort) ([]*entity.StaffStats, error) {
	all, err := s.dm.Stats().ListByTeam(ctx, teamID)
	if err != nil {
		return nil, storeErr(err)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if sortBy == entity.SortByMessages {
			return all[i].TotalMessages > all[j].TotalMessages
		}
		return all[i].TotalDuration > all[j].TotalDuration
	})

	if len(all) > domain.LeaderboardSize {
		all = all[:domain.LeaderboardSize]
	}
	return all, nil
}

// GetStats returns zero totals for a member with no recorded activity
func (s *staffService) GetStats(ctx context.Context, teamID, userID string) (*entity.StaffStats, error) {
	stats, err := s.dm.Stats().Get(ctx, teamID, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	if stats == nil {
		stats = &entity.StaffStats{TeamID: teamID, UserID: userID}
	}
	return stats, nil
}
