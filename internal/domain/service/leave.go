package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// HasActiveLOA checks the end time, not the record: an expired record awaiting the sweep is not active
func (s *staffService) HasActiveLOA(ctx context.Context, teamID, userID string) (bool, error) {
	loa, err := s.dm.LOA().Get(ctx, teamID, userID)
	if err != nil {
		return false, storeErr(err)
	}
	return loa != nil && loa.ActiveAt(s.now()), nil
}

func (s *staffService) ValidateLOARequest(ctx context.Context, teamID, userID string) error {
	_, err := s.validateLOARequest(ctx, teamID, userID)
	return err
}

func (s *staffService) validateLOARequest(ctx context.Context, teamID, userID string) (*entity.Organization, error) {
	org, err := ensureOrganization(ctx, s.dm, teamID)
	if err != nil {
		return nil, err
	}

	shift, err := s.dm.Shift().Get(ctx, teamID, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	if shift != nil {
		return nil, domain.ErrAlreadyOnShift
	}

	active, err := s.HasActiveLOA(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, domain.ErrAlreadyOnLeave
	}

	if org.Config.ManagementChannelID == "" {
		return nil, domain.ErrManagementChannelNotConfigured
	}

	return org, nil
}

// RequestLOA posts an application to the management channel. Unlike other
// side effects, a failed delivery is returned because nothing was recorded.
func (s *staffService) RequestLOA(ctx context.Context, teamID, userID string, duration time.Duration, label, reason string) (*entity.LOARequest, error) {
	if duration <= 0 {
		return nil, domain.ErrInvalidDuration
	}

	org, err := s.validateLOARequest(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}

	request := &entity.LOARequest{
		TeamID:   teamID,
		UserID:   userID,
		Duration: duration,
		Label:    label,
		Reason:   reason,
		EndTime:  s.now().Add(duration),
	}

	intent := notifyIntent(teamID, userID, org.Config.ManagementChannelID, loaApplicationMessage(request))
	if err := s.effects.run(ctx, intent); err != nil {
		return nil, err
	}

	s.log.Info("leave requested", zap.String("team_id", teamID), zap.String("user_id", userID), zap.String("duration", label))
	return request, nil
}

// StartLOA records an approved leave. Any active shift is closed first so a
// member is never on shift and on leave at the same time.
func (s *staffService) StartLOA(ctx context.Context, teamID, userID string, endTime time.Time, reason string) (*entity.LOA, error) {
	org, err := ensureOrganization(ctx, s.dm, teamID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if !endTime.After(now) {
		return nil, domain.ErrInvalidDuration
	}

	loa := &entity.LOA{
		TeamID:        teamID,
		UserID:        userID,
		StartTime:     now,
		EndTime:       endTime,
		Reason:        reason,
		DurationLabel: domain.FormatDuration(endTime.Sub(now)),
	}

	var closed *entity.ClosedShift
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		var err error
		closed, err = closeShift(ctx, tx, teamID, userID, now)
		if err != nil && !errors.Is(err, domain.ErrNotOnShift) {
			return err
		}

		if err := tx.LOA().Create(ctx, loa); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	intents := []entity.Intent{
		grantIntent(teamID, userID, org.Config.LOAGroupID),
		revokeIntent(teamID, userID, org.Config.OnDutyGroupID),
		notifyIntent(teamID, userID, "", loaApprovedMessage(loa)),
	}
	s.effects.Execute(ctx, intents)

	fields := []zap.Field{zap.String("team_id", teamID), zap.String("user_id", userID), zap.Time("end_time", endTime)}
	if closed != nil {
		fields = append(fields, zap.Duration("closed_shift", closed.Elapsed))
	}
	s.log.Info("leave started", fields...)

	return loa, nil
}

// DenyLOA tells the applicant their application was denied. Nothing is stored for a pending application.
func (s *staffService) DenyLOA(ctx context.Context, teamID, managerID, userID string) error {
	intent := notifyIntent(teamID, userID, "", fmt.Sprintf("❌ Your leave of absence application has been *denied* by <@%s>.", managerID))
	return s.effects.run(ctx, intent)
}

// EndLOA removes the leave unconditionally and returns what it was
func (s *staffService) EndLOA(ctx context.Context, teamID, userID string) (*entity.ClosedLOA, error) {
	var loa *entity.LOA
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		var err error
		loa, err = tx.LOA().Get(ctx, teamID, userID)
		if err != nil {
			return storeErr(err)
		}
		if loa == nil {
			return domain.ErrNoActiveLeave
		}

		if _, err := tx.LOA().Delete(ctx, teamID, userID); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	closed := &entity.ClosedLOA{
		LOA:       *loa,
		EndedAt:   now,
		Actual:    now.Sub(loa.StartTime),
		Scheduled: loa.EndTime.Sub(loa.StartTime),
	}

	org, err := s.dm.Organization().GetByTeamID(ctx, teamID)
	if err != nil {
		s.log.Warn("failed to load organization after leave end", zap.String("team_id", teamID), zap.Error(err))
	} else if org != nil {
		s.effects.Execute(ctx, []entity.Intent{revokeIntent(teamID, userID, org.Config.LOAGroupID)})
	}

	s.log.Info("leave ended early", zap.String("team_id", teamID), zap.String("user_id", userID))
	return closed, nil
}
