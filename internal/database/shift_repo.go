package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
)

type shiftRepo struct {
	db dbConn
}

func newShiftRepo(db dbConn) contract.ShiftRepo {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) Create(ctx context.Context, shift *entity.Shift) error {
	query := `
		INSERT INTO active_shifts (team_id, user_id, start_time, end_time,
			duration_label, reminded, messages)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		shift.TeamID,
		shift.UserID,
		toMillis(shift.StartTime),
		toMillis(shift.EndTime),
		shift.DurationLabel,
		shift.Reminded,
		shift.Messages,
	)
	if isConstraintViolation(err) {
		return domain.ErrAlreadyOnShift
	}
	if err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}

	return nil
}

func (r *shiftRepo) Get(ctx context.Context, teamID, userID string) (*entity.Shift, error) {
	query := `
		SELECT team_id, user_id, start_time, end_time, duration_label, reminded, messages
		FROM active_shifts
		WHERE team_id = ? AND user_id = ?
	`

	shift, err := scanShift(r.db.QueryRowContext(ctx, query, teamID, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	return shift, nil
}

func (r *shiftRepo) ListByTeam(ctx context.Context, teamID string) (map[string]*entity.Shift, error) {
	query := `
		SELECT team_id, user_id, start_time, end_time, duration_label, reminded, messages
		FROM active_shifts
		WHERE team_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	shifts := make(map[string]*entity.Shift)
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts[shift.UserID] = shift
	}

	return shifts, rows.Err()
}

func (r *shiftRepo) Delete(ctx context.Context, teamID, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM active_shifts WHERE team_id = ? AND user_id = ?`, teamID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete shift: %w", err)
	}

	return affected(result)
}

// UpdateEndTime moves the scheduled end and re-arms the reminder
func (r *shiftRepo) UpdateEndTime(ctx context.Context, teamID, userID string, endTime time.Time) error {
	query := `
		UPDATE active_shifts SET
			end_time = ?,
			reminded = 0
		WHERE team_id = ? AND user_id = ?
	`

	_, err := r.db.ExecContext(ctx, query, toMillis(endTime), teamID, userID)
	if err != nil {
		return fmt.Errorf("failed to update shift end time: %w", err)
	}

	return nil
}

// MarkReminded flags the shift only while it still ends at endTime and has not been
// reminded. It reports false when the shift was ended or extended in the meantime.
func (r *shiftRepo) MarkReminded(ctx context.Context, teamID, userID string, endTime time.Time) (bool, error) {
	query := `
		UPDATE active_shifts SET reminded = 1
		WHERE team_id = ? AND user_id = ? AND end_time = ? AND reminded = 0
	`

	result, err := r.db.ExecContext(ctx, query, teamID, userID, toMillis(endTime))
	if err != nil {
		return false, fmt.Errorf("failed to mark shift reminded: %w", err)
	}

	return affected(result)
}

func (r *shiftRepo) IncrementMessages(ctx context.Context, teamID, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE active_shifts SET messages = messages + 1 WHERE team_id = ? AND user_id = ?`, teamID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to increment shift messages: %w", err)
	}

	return affected(result)
}

// AppendHistory stores a completed shift and keeps only the most recent entries per organization
func (r *shiftRepo) AppendHistory(ctx context.Context, entry *entity.ShiftHistoryEntry) error {
	query := `
		INSERT INTO shift_history (team_id, user_id, start_time, end_time,
			scheduled_end_time, duration_label, messages)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.TeamID,
		entry.UserID,
		toMillis(entry.StartTime),
		toMillis(entry.EndTime),
		toMillis(entry.ScheduledEndTime),
		entry.DurationLabel,
		entry.Messages,
	)
	if err != nil {
		return fmt.Errorf("failed to append shift history: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	entry.ID = id

	trim := `
		DELETE FROM shift_history
		WHERE team_id = ? AND id NOT IN (
			SELECT id FROM shift_history WHERE team_id = ? ORDER BY id DESC LIMIT ?
		)
	`
	if _, err := r.db.ExecContext(ctx, trim, entry.TeamID, entry.TeamID, domain.ShiftHistoryLimit); err != nil {
		return fmt.Errorf("failed to trim shift history: %w", err)
	}

	return nil
}

func (r *shiftRepo) ListHistory(ctx context.Context, teamID string) ([]*entity.ShiftHistoryEntry, error) {
	query := `
		SELECT id, team_id, user_id, start_time, end_time, scheduled_end_time,
			duration_label, messages
		FROM shift_history
		WHERE team_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift history: %w", err)
	}
	defer rows.Close()

	var entries []*entity.ShiftHistoryEntry
	for rows.Next() {
		entry := &entity.ShiftHistoryEntry{}
		var start, end, scheduled int64
		err := rows.Scan(
			&entry.ID,
			&entry.TeamID,
			&entry.UserID,
			&start,
			&end,
			&scheduled,
			&entry.DurationLabel,
			&entry.Messages,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift history: %w", err)
		}
		entry.StartTime = fromMillis(start)
		entry.EndTime = fromMillis(end)
		entry.ScheduledEndTime = fromMillis(scheduled)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanShift(row scanner) (*entity.Shift, error) {
	shift := &entity.Shift{}
	var start, end int64
	err := row.Scan(
		&shift.TeamID,
		&shift.UserID,
		&start,
		&end,
		&shift.DurationLabel,
		&shift.Reminded,
		&shift.Messages,
	)
	if err != nil {
		return nil, err
	}
	shift.StartTime = fromMillis(start)
	shift.EndTime = fromMillis(end)
	return shift, nil
}

func affected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}
