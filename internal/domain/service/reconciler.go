package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Reconciler turns wall-clock time into shift and leave transitions. It reads
// the store fresh on every tick and returns the side effects for the caller to run.
type Reconciler struct {
	dm             contract.DataManager
	reminderWindow time.Duration
	concurrency    int
	log            *zap.Logger
}

func newReconciler(dm contract.DataManager, reminderWindow time.Duration, concurrency int, log *zap.Logger) *Reconciler {
	return &Reconciler{
		dm:             dm,
		reminderWindow: reminderWindow,
		concurrency:    concurrency,
		log:            log,
	}
}

// Tick runs one sweep over the given organizations. A failure for one member
// or organization is logged and the sweep moves on.
func (r *Reconciler) Tick(ctx context.Context, teamIDs []string, now time.Time) []entity.Intent {
	results := make([][]entity.Intent, len(teamIDs))

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, teamID := range teamIDs {
		g.Go(func() error {
			results[i] = r.reconcileOrganization(ctx, teamID, now)
			return nil
		})
	}
	_ = g.Wait()

	var intents []entity.Intent
	for _, result := range results {
		intents = append(intents, result...)
	}
	return intents
}

func (r *Reconciler) reconcileOrganization(ctx context.Context, teamID string, now time.Time) []entity.Intent {
	org, err := r.dm.Organization().GetByTeamID(ctx, teamID)
	if err != nil {
		r.log.Error("failed to load organization", zap.String("team_id", teamID), zap.Error(err))
		return nil
	}
	if org == nil {
		return nil
	}

	var intents []entity.Intent

	shifts, err := r.dm.Shift().ListByTeam(ctx, teamID)
	if err != nil {
		r.log.Error("failed to list active shifts", zap.String("team_id", teamID), zap.Error(err))
	} else {
		for _, userID := range sortedKeys(shifts) {
			intents = append(intents, r.reconcileShift(ctx, org, shifts[userID], now)...)
		}
	}

	loas, err := r.dm.LOA().ListByTeam(ctx, teamID)
	if err != nil {
		r.log.Error("failed to list active leaves", zap.String("team_id", teamID), zap.Error(err))
	} else {
		for _, userID := range sortedKeys(loas) {
			intents = append(intents, r.reconcileLOA(ctx, org, loas[userID], now)...)
		}
	}

	return intents
}

// reconcileShift checks the reminder before expiry so one tick never does both.
// now == EndTime counts as expired.
func (r *Reconciler) reconcileShift(ctx context.Context, org *entity.Organization, shift *entity.Shift, now time.Time) []entity.Intent {
	teamID, userID := shift.TeamID, shift.UserID
	remaining := shift.Remaining(now)

	if remaining > 0 && remaining <= r.reminderWindow && !shift.Reminded {
		marked, err := r.dm.Shift().MarkReminded(ctx, teamID, userID, shift.EndTime)
		if err != nil {
			r.log.Error("failed to mark shift reminded", zap.String("team_id", teamID), zap.String("user_id", userID), zap.Error(err))
			return nil
		}
		if !marked {
			// ended or extended since the list was read
			return nil
		}
		shift.Reminded = true
		return []entity.Intent{
			notifyIntent(teamID, userID, "", shiftReminderMessage(shift, domain.FormatDuration(r.reminderWindow))),
		}
	}

	if remaining > 0 {
		return nil
	}

	var closed *entity.ClosedShift
	err := r.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		var err error
		closed, err = closeExpiredShift(ctx, tx, teamID, userID, now)
		return err
	})
	if errors.Is(err, domain.ErrNotOnShift) || errors.Is(err, errShiftNotDue) {
		// ended or extended since the list was read
		return nil
	}
	if err != nil {
		r.log.Error("failed to close expired shift", zap.String("team_id", teamID), zap.String("user_id", userID), zap.Error(err))
		return nil
	}

	r.log.Info("shift expired",
		zap.String("team_id", teamID),
		zap.String("user_id", userID),
		zap.Duration("elapsed", closed.Elapsed),
	)

	var intents []entity.Intent
	if org.Config.OnDutyGroupID != "" {
		intents = append(intents, revokeIntent(teamID, userID, org.Config.OnDutyGroupID))
	}
	return append(intents, notifyIntent(teamID, userID, "", shiftExpiredMessage(closed)))
}

// reconcileLOA marks the record notified, signals the notification and then
// removes it. The mark happens whether or not delivery later succeeds. Both
// writes only touch a record that is still expired, so a leave approved again
// after the list was read survives the sweep.
func (r *Reconciler) reconcileLOA(ctx context.Context, org *entity.Organization, loa *entity.LOA, now time.Time) []entity.Intent {
	if loa.ActiveAt(now) {
		return nil
	}

	teamID, userID := loa.TeamID, loa.UserID
	var intents []entity.Intent

	if !loa.Notified {
		marked, err := r.dm.LOA().MarkNotified(ctx, teamID, userID, now)
		if err != nil {
			r.log.Error("failed to mark leave notified", zap.String("team_id", teamID), zap.String("user_id", userID), zap.Error(err))
			return nil
		}
		if !marked {
			return nil
		}
		intents = append(intents, notifyIntent(teamID, userID, "", loaExpiredMessage()))
	}

	// a notified record still present means an earlier tick stopped before removal
	deleted, err := r.dm.LOA().DeleteExpired(ctx, teamID, userID, now)
	if err != nil {
		r.log.Error("failed to remove expired leave", zap.String("team_id", teamID), zap.String("user_id", userID), zap.Error(err))
		return intents
	}
	if !deleted {
		return intents
	}

	r.log.Info("leave expired", zap.String("team_id", teamID), zap.String("user_id", userID))

	if org.Config.LOAGroupID != "" {
		intents = append(intents, revokeIntent(teamID, userID, org.Config.LOAGroupID))
	}
	return intents
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
