package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
)

type loaRepo struct {
	db dbConn
}

func newLOARepo(db dbConn) contract.LOARepo {
	return &loaRepo{db: db}
}

// Create stores the leave, replacing an expired record for the same member if one is still present
func (r *loaRepo) Create(ctx context.Context, loa *entity.LOA) error {
	query := `
		INSERT OR REPLACE INTO active_loas (team_id, user_id, start_time, end_time,
			reason, duration_label, notified)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		loa.TeamID,
		loa.UserID,
		toMillis(loa.StartTime),
		toMillis(loa.EndTime),
		loa.Reason,
		loa.DurationLabel,
		loa.Notified,
	)
	if err != nil {
		return fmt.Errorf("failed to create loa: %w", err)
	}

	return nil
}

func (r *loaRepo) Get(ctx context.Context, teamID, userID string) (*entity.LOA, error) {
	query := `
		SELECT team_id, user_id, start_time, end_time, reason, duration_label, notified
		FROM active_loas
		WHERE team_id = ? AND user_id = ?
	`

	loa, err := scanLOA(r.db.QueryRowContext(ctx, query, teamID, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get loa: %w", err)
	}

	return loa, nil
}

func (r *loaRepo) ListByTeam(ctx context.Context, teamID string) (map[string]*entity.LOA, error) {
	query := `
		SELECT team_id, user_id, start_time, end_time, reason, duration_label, notified
		FROM active_loas
		WHERE team_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loas: %w", err)
	}
	defer rows.Close()

	loas := make(map[string]*entity.LOA)
	for rows.Next() {
		loa, err := scanLOA(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loa: %w", err)
		}
		loas[loa.UserID] = loa
	}

	return loas, rows.Err()
}

func (r *loaRepo) Delete(ctx context.Context, teamID, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM active_loas WHERE team_id = ? AND user_id = ?`, teamID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete loa: %w", err)
	}

	return affected(result)
}

// DeleteExpired removes the leave only if it has ended by now, so a leave approved
// again after it was listed survives.
func (r *loaRepo) DeleteExpired(ctx context.Context, teamID, userID string, now time.Time) (bool, error) {
	query := `DELETE FROM active_loas WHERE team_id = ? AND user_id = ? AND end_time <= ?`

	result, err := r.db.ExecContext(ctx, query, teamID, userID, toMillis(now))
	if err != nil {
		return false, fmt.Errorf("failed to delete expired loa: %w", err)
	}

	return affected(result)
}

func (r *loaRepo) MarkNotified(ctx context.Context, teamID, userID string, now time.Time) (bool, error) {
	query := `UPDATE active_loas SET notified = 1 WHERE team_id = ? AND user_id = ? AND end_time <= ?`

	result, err := r.db.ExecContext(ctx, query, teamID, userID, toMillis(now))
	if err != nil {
		return false, fmt.Errorf("failed to mark loa notified: %w", err)
	}

	return affected(result)
}

func scanLOA(row scanner) (*entity.LOA, error) {
	loa := &entity.LOA{}
	var start, end int64
	err := row.Scan(
		&loa.TeamID,
		&loa.UserID,
		&start,
		&end,
		&loa.Reason,
		&loa.DurationLabel,
		&loa.Notified,
	)
	if err != nil {
		return nil, err
	}
	loa.StartTime = fromMillis(start)
	loa.EndTime = fromMillis(end)
	return loa, nil
}
