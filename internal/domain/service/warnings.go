package service

import (
	"context"
	"encoding/binary"
	"errors"
	"strconv"
	"strings"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// warningIDAttempts bounds retries when a generated ID collides
const warningIDAttempts = 5

// 36^6
const warningIDSpace = 2176782336

// newWarningID returns a random uppercase base36 code of domain.WarningIDLength characters
func newWarningID() string {
	id := uuid.New()
	n := binary.BigEndian.Uint64(id[:8]) % warningIDSpace
	code := strings.ToUpper(strconv.FormatUint(n, 36))
	return strings.Repeat("0", domain.WarningIDLength-len(code)) + code
}

// AddWarning stores a warning and tells the member about it. The direct message
// is best effort; the warning is kept when it cannot be delivered.
func (s *staffService) AddWarning(ctx context.Context, teamID, moderatorID, userID, reason string) (*entity.Warning, error) {
	if _, err := ensureOrganization(ctx, s.dm, teamID); err != nil {
		return nil, err
	}

	warning := &entity.Warning{
		TeamID:      teamID,
		UserID:      userID,
		ModeratorID: moderatorID,
		Reason:      strings.TrimSpace(reason),
		CreatedAt:   s.now(),
	}

	var err error
	for attempt := 0; attempt < warningIDAttempts; attempt++ {
		warning.ID = s.warningID()
		err = s.dm.Warning().Create(ctx, warning)
		if !errors.Is(err, domain.ErrWarningIDTaken) {
			break
		}
	}
	if err != nil {
		return nil, storeErr(err)
	}

	s.effects.Execute(ctx, []entity.Intent{notifyIntent(teamID, userID, "", warningMessage(warning))})

	s.log.Info("warning added",
		zap.String("team_id", teamID),
		zap.String("moderator_id", moderatorID),
		zap.String("user_id", userID),
		zap.String("warning_id", warning.ID),
	)
	return warning, nil
}

// ListWarnings returns every warning of the member, oldest first
func (s *staffService) ListWarnings(ctx context.Context, teamID, userID string) ([]*entity.Warning, error) {
	warnings, err := s.dm.Warning().ListByUser(ctx, teamID, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	return warnings, nil
}

// RemoveWarning deletes a warning by its code. Codes are matched case-insensitively.
func (s *staffService) RemoveWarning(ctx context.Context, teamID, warningID string) error {
	warningID = strings.ToUpper(strings.TrimSpace(warningID))

	deleted, err := s.dm.Warning().Delete(ctx, teamID, warningID)
	if err != nil {
		return storeErr(err)
	}
	if !deleted {
		return domain.ErrWarningNotFound
	}

	s.log.Info("warning removed", zap.String("team_id", teamID), zap.String("warning_id", warningID))
	return nil
}
