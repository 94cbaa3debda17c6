package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-shift-bot/internal/domain/slack"
	"go.uber.org/zap"
)

type staffService struct {
	dm        contract.DataManager
	roles     contract.RoleSync
	effects   *effects
	cooldowns *Cooldowns
	now       func() time.Time
	warningID func() string
	log       *zap.Logger
}

func newStaff(dm contract.DataManager, roles contract.RoleSync, fx *effects, cooldowns *Cooldowns, now func() time.Time, log *zap.Logger) *staffService {
	return &staffService{
		dm:        dm,
		roles:     roles,
		effects:   fx,
		cooldowns: cooldowns,
		now:       now,
		warningID: newWarningID,
		log:       log,
	}
}

var errShiftNotDue = errors.New("shift has not reached its end time")

func storeErr(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}

func (s *staffService) SetupOrganization(ctx context.Context, teamID string) (*entity.Organization, error) {
	return ensureOrganization(ctx, s.dm, teamID)
}

// ensureOrganization returns the organization, creating it with default settings on first use
func ensureOrganization(ctx context.Context, dm contract.DataManager, teamID string) (*entity.Organization, error) {
	org, err := dm.Organization().GetByTeamID(ctx, teamID)
	if err != nil {
		return nil, storeErr(err)
	}
	if org != nil {
		return org, nil
	}

	org = &entity.Organization{
		TeamID: teamID,
		Config: entity.Config{ReportCooldownSeconds: domain.DefaultReportCooldownSeconds},
	}
	if err := dm.Organization().Create(ctx, org); err != nil {
		// another request may have created it first
		existing, getErr := dm.Organization().GetByTeamID(ctx, teamID)
		if getErr == nil && existing != nil {
			return existing, nil
		}
		return nil, storeErr(err)
	}

	return org, nil
}

func (s *staffService) UpdateConfig(ctx context.Context, teamID, configType, value string) (*entity.Config, error) {
	org, err := ensureOrganization(ctx, s.dm, teamID)
	if err != nil {
		return nil, err
	}

	cfg := org.Config
	value = strings.TrimSpace(value)
	unset := strings.EqualFold(value, "none")

	switch strings.ToLower(configType) {
	case "onduty":
		cfg.OnDutyGroupID, err = parseConfigRef(value, unset, slackcmd.ParseGroupRef, "user group")
	case "loa":
		cfg.LOAGroupID, err = parseConfigRef(value, unset, slackcmd.ParseGroupRef, "user group")
	case "management":
		cfg.ManagementChannelID, err = parseConfigRef(value, unset, slackcmd.ParseChannelRef, "channel")
	case "reports":
		cfg.ReportChannelID, err = parseConfigRef(value, unset, slackcmd.ParseChannelRef, "channel")
	case "cooldown":
		seconds, convErr := strconv.Atoi(value)
		if convErr != nil || seconds < 0 {
			return nil, fmt.Errorf("%w: cooldown must be a whole number of seconds, e.g. 60", domain.ErrInvalidConfig)
		}
		cfg.ReportCooldownSeconds = seconds
	case "managers":
		cfg.ManagerGroupIDs, err = parseGroupList(value, unset)
	case "allowed":
		cfg.AllowedGroupIDs, err = parseGroupList(value, unset)
	default:
		return nil, fmt.Errorf("%w: unknown setting %q. Use onduty, loa, management, reports, cooldown, managers or allowed", domain.ErrInvalidConfig, configType)
	}
	if err != nil {
		return nil, err
	}

	if err := s.dm.Organization().UpdateConfig(ctx, teamID, cfg); err != nil {
		return nil, storeErr(err)
	}

	s.log.Info("configuration updated", zap.String("team_id", teamID), zap.String("setting", configType))
	return &cfg, nil
}

func parseConfigRef(value string, unset bool, parse func(string) (string, bool), kind string) (string, error) {
	if unset {
		return "", nil
	}
	id, ok := parse(value)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a %s", domain.ErrInvalidConfig, value, kind)
	}
	return id, nil
}

func parseGroupList(value string, unset bool) ([]string, error) {
	if unset {
		return []string{}, nil
	}

	fields := strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: mention at least one user group", domain.ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(fields))
	groups := make([]string, 0, len(fields))
	for _, field := range fields {
		id, ok := slackcmd.ParseGroupRef(field)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a user group", domain.ErrInvalidConfig, field)
		}
		if !seen[id] {
			seen[id] = true
			groups = append(groups, id)
		}
	}
	return groups, nil
}

// CheckShiftEligibility reports the on-shift record, the LOA record and the LOA
// group membership separately so callers can tell a stale group from a real leave.
func (s *staffService) CheckShiftEligibility(ctx context.Context, teamID, userID string) (*entity.ShiftEligibility, error) {
	_, eligibility, err := s.eligibility(ctx, teamID, userID)
	return eligibility, err
}

func (s *staffService) eligibility(ctx context.Context, teamID, userID string) (*entity.Organization, *entity.ShiftEligibility, error) {
	org, err := ensureOrganization(ctx, s.dm, teamID)
	if err != nil {
		return nil, nil, err
	}

	shift, err := s.dm.Shift().Get(ctx, teamID, userID)
	if err != nil {
		return nil, nil, storeErr(err)
	}

	loa, err := s.dm.LOA().Get(ctx, teamID, userID)
	if err != nil {
		return nil, nil, storeErr(err)
	}

	eligibility := &entity.ShiftEligibility{
		OnShift:      shift,
		LOA:          loa,
		HasLOARecord: loa != nil && loa.ActiveAt(s.now()),
	}

	if org.Config.LOAGroupID != "" {
		held, err := s.hasRole(ctx, org.Config.LOAGroupID, userID)
		if err != nil {
			s.log.Warn("failed to check leave group membership",
				zap.String("team_id", teamID),
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
		eligibility.HasLOARole = held
	}

	return org, eligibility, nil
}

func (s *staffService) hasRole(ctx context.Context, roleID, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.effects.timeout)
	defer cancel()
	return s.roles.HasRole(ctx, roleID, userID)
}

// StartShift opens a shift for the member. An LOA record whose end time has passed
// does not block, even when the sweep has not removed it yet.
func (s *staffService) StartShift(ctx context.Context, teamID, userID string, duration time.Duration, label string) (*entity.Shift, error) {
	if duration <= 0 {
		return nil, domain.ErrInvalidDuration
	}

	org, eligibility, err := s.eligibility(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}

	switch {
	case eligibility.OnShift != nil:
		return nil, domain.ErrAlreadyOnShift
	case eligibility.HasLOARecord:
		return nil, domain.ErrOnLeave
	case eligibility.HasLOARole && eligibility.LOA == nil:
		return nil, domain.ErrLeaveRoleHeld
	}

	now := s.now()
	shift := &entity.Shift{
		TeamID:        teamID,
		UserID:        userID,
		StartTime:     now,
		EndTime:       now.Add(duration),
		DurationLabel: label,
	}
	err = s.dm.Shift().Create(ctx, shift)
	if errors.Is(err, domain.ErrAlreadyOnShift) {
		// a concurrent start won the insert
		return nil, err
	}
	if err != nil {
		return nil, storeErr(err)
	}

	s.effects.Execute(ctx, []entity.Intent{grantIntent(teamID, userID, org.Config.OnDutyGroupID)})

	s.log.Info("shift started",
		zap.String("team_id", teamID),
		zap.String("user_id", userID),
		zap.Duration("duration", duration),
	)
	return shift, nil
}

// ExtendShift pushes the end time forward and re-arms the reminder
func (s *staffService) ExtendShift(ctx context.Context, teamID, userID string, extension time.Duration) (*entity.Shift, error) {
	if extension <= 0 {
		return nil, domain.ErrInvalidDuration
	}

	var shift *entity.Shift
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		var err error
		shift, err = tx.Shift().Get(ctx, teamID, userID)
		if err != nil {
			return storeErr(err)
		}
		if shift == nil {
			return domain.ErrNotOnShift
		}

		shift.EndTime = shift.EndTime.Add(extension)
		shift.Reminded = false
		if err := tx.Shift().UpdateEndTime(ctx, teamID, userID, shift.EndTime); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return shift, nil
}

// EndShift closes the member's shift. Calling it twice returns ErrNotOnShift.
func (s *staffService) EndShift(ctx context.Context, teamID, userID string) (*entity.ClosedShift, error) {
	var closed *entity.ClosedShift
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		var err error
		closed, err = closeShift(ctx, tx, teamID, userID, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}

	org, err := s.dm.Organization().GetByTeamID(ctx, teamID)
	if err != nil {
		s.log.Warn("failed to load organization after shift end", zap.String("team_id", teamID), zap.Error(err))
	} else if org != nil {
		s.effects.Execute(ctx, []entity.Intent{revokeIntent(teamID, userID, org.Config.OnDutyGroupID)})
	}

	s.log.Info("shift ended",
		zap.String("team_id", teamID),
		zap.String("user_id", userID),
		zap.Duration("elapsed", closed.Elapsed),
	)
	return closed, nil
}

// closeShift moves an active shift into history and statistics. It must run inside a transaction.
func closeShift(ctx context.Context, dm contract.DataManager, teamID, userID string, now time.Time) (*entity.ClosedShift, error) {
	shift, err := dm.Shift().Get(ctx, teamID, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	if shift == nil {
		return nil, domain.ErrNotOnShift
	}

	return archiveShift(ctx, dm, shift, now)
}

// closeExpiredShift is closeShift for the sweep: a shift extended after it was
// listed is left alone and reported as errShiftNotDue.
func closeExpiredShift(ctx context.Context, dm contract.DataManager, teamID, userID string, now time.Time) (*entity.ClosedShift, error) {
	shift, err := dm.Shift().Get(ctx, teamID, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	if shift == nil {
		return nil, domain.ErrNotOnShift
	}
	if !shift.Expired(now) {
		return nil, errShiftNotDue
	}

	return archiveShift(ctx, dm, shift, now)
}

func archiveShift(ctx context.Context, dm contract.DataManager, shift *entity.Shift, now time.Time) (*entity.ClosedShift, error) {
	teamID, userID := shift.TeamID, shift.UserID

	elapsed := now.Sub(shift.StartTime)
	if elapsed < 0 {
		elapsed = 0
	}

	entry := entity.ShiftHistoryEntry{
		TeamID:           teamID,
		UserID:           userID,
		StartTime:        shift.StartTime,
		EndTime:          now,
		ScheduledEndTime: shift.EndTime,
		DurationLabel:    shift.DurationLabel,
		Messages:         shift.Messages,
	}
	if err := dm.Shift().AppendHistory(ctx, &entry); err != nil {
		return nil, storeErr(err)
	}

	if err := dm.Stats().AddShift(ctx, teamID, userID, shift.Messages, elapsed); err != nil {
		return nil, storeErr(err)
	}

	deleted, err := dm.Shift().Delete(ctx, teamID, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	if !deleted {
		return nil, domain.ErrNotOnShift
	}

	return &entity.ClosedShift{Entry: entry, Elapsed: elapsed}, nil
}

func (s *staffService) GetShift(ctx context.Context, teamID, userID string) (*entity.Shift, error) {
	shift, err := s.dm.Shift().Get(ctx, teamID, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	return shift, nil
}

// ListActiveShifts returns the active shifts ordered by start time
func (s *staffService) ListActiveShifts(ctx context.Context, teamID string) ([]*entity.Shift, error) {
	shifts, err := s.dm.Shift().ListByTeam(ctx, teamID)
	if err != nil {
		return nil, storeErr(err)
	}

	list := make([]*entity.Shift, 0, len(shifts))
	for _, shift := range shifts {
		list = append(list, shift)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].StartTime.Equal(list[j].StartTime) {
			return list[i].UserID < list[j].UserID
		}
		return list[i].StartTime.Before(list[j].StartTime)
	})

	return list, nil
}

// IncrementMessageCount is a no-op for members who are not on shift
func (s *staffService) IncrementMessageCount(ctx context.Context, teamID, userID string) error {
	if _, err := s.dm.Shift().IncrementMessages(ctx, teamID, userID); err != nil {
		return storeErr(err)
	}
	return nil
}
