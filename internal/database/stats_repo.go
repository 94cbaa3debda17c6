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

type statsRepo struct {
	db dbConn
}

func newStatsRepo(db dbConn) contract.StatsRepo {
	return &statsRepo{db: db}
}

func (r *statsRepo) Get(ctx context.Context, teamID, userID string) (*entity.StaffStats, error) {
	query := `
		SELECT team_id, user_id, total_messages, total_duration_ms, total_bans, total_kicks
		FROM staff_stats
		WHERE team_id = ? AND user_id = ?
	`

	stats, err := scanStats(r.db.QueryRowContext(ctx, query, teamID, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get staff stats: %w", err)
	}

	return stats, nil
}

func (r *statsRepo) ListByTeam(ctx context.Context, teamID string) ([]*entity.StaffStats, error) {
	query := `
		SELECT team_id, user_id, total_messages, total_duration_ms, total_bans, total_kicks
		FROM staff_stats
		WHERE team_id = ?
		ORDER BY user_id
	`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff stats: %w", err)
	}
	defer rows.Close()

	var list []*entity.StaffStats
	for rows.Next() {
		stats, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff stats: %w", err)
		}
		list = append(list, stats)
	}

	return list, rows.Err()
}

func (r *statsRepo) AddShift(ctx context.Context, teamID, userID string, messages int64, duration time.Duration) error {
	query := `
		INSERT INTO staff_stats (team_id, user_id, total_messages, total_duration_ms)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (team_id, user_id) DO UPDATE SET
			total_messages = total_messages + excluded.total_messages,
			total_duration_ms = total_duration_ms + excluded.total_duration_ms
	`

	_, err := r.db.ExecContext(ctx, query, teamID, userID, messages, duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to add shift to staff stats: %w", err)
	}

	return nil
}

// RecordModeration appends to the bounded moderation log and bumps the moderator's counter
func (r *statsRepo) RecordModeration(ctx context.Context, entry *entity.ModerationLogEntry) error {
	var counter string
	switch entry.Action {
	case entity.ModerationBan:
		counter = "total_bans"
	case entity.ModerationKick:
		counter = "total_kicks"
	default:
		return fmt.Errorf("unknown moderation action: %s", entry.Action)
	}

	insert := `
		INSERT INTO moderation_log (id, team_id, action, moderator_id, target_id, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, insert,
		entry.ID,
		entry.TeamID,
		string(entry.Action),
		entry.ModeratorID,
		entry.TargetID,
		entry.Reason,
		toMillis(entry.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to append moderation log: %w", err)
	}

	trim := `
		DELETE FROM moderation_log
		WHERE team_id = ? AND action = ? AND rowid NOT IN (
			SELECT rowid FROM moderation_log
			WHERE team_id = ? AND action = ?
			ORDER BY rowid DESC LIMIT ?
		)
	`
	_, err = r.db.ExecContext(ctx, trim,
		entry.TeamID, string(entry.Action),
		entry.TeamID, string(entry.Action),
		domain.ModerationLogLimit,
	)
	if err != nil {
		return fmt.Errorf("failed to trim moderation log: %w", err)
	}

	upsert := fmt.Sprintf(`
		INSERT INTO staff_stats (team_id, user_id, %[1]s)
		VALUES (?, ?, 1)
		ON CONFLICT (team_id, user_id) DO UPDATE SET %[1]s = %[1]s + 1
	`, counter)
	if _, err := r.db.ExecContext(ctx, upsert, entry.TeamID, entry.ModeratorID); err != nil {
		return fmt.Errorf("failed to increment %s: %w", counter, err)
	}

	return nil
}

// ListModeration returns the newest entries first
func (r *statsRepo) ListModeration(ctx context.Context, teamID string, action entity.ModerationAction, limit int) ([]*entity.ModerationLogEntry, error) {
	query := `
		SELECT id, team_id, action, moderator_id, target_id, reason, created_at
		FROM moderation_log
		WHERE team_id = ? AND action = ?
		ORDER BY rowid DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, teamID, string(action), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list moderation log: %w", err)
	}
	defer rows.Close()

	var entries []*entity.ModerationLogEntry
	for rows.Next() {
		entry := &entity.ModerationLogEntry{}
		var action string
		var createdAt int64
		err := rows.Scan(
			&entry.ID,
			&entry.TeamID,
			&action,
			&entry.ModeratorID,
			&entry.TargetID,
			&entry.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan moderation log: %w", err)
		}
		entry.Action = entity.ModerationAction(action)
		entry.CreatedAt = fromMillis(createdAt)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func scanStats(row scanner) (*entity.StaffStats, error) {
	stats := &entity.StaffStats{}
	var durationMs int64
	err := row.Scan(
		&stats.TeamID,
		&stats.UserID,
		&stats.TotalMessages,
		&durationMs,
		&stats.TotalBans,
		&stats.TotalKicks,
	)
	if err != nil {
		return nil, err
	}
	stats.TotalDuration = time.Duration(durationMs) * time.Millisecond
	return stats, nil
}
