package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
)

type warningRepo struct {
	db dbConn
}

func newWarningRepo(db dbConn) contract.WarningRepo {
	return &warningRepo{db: db}
}

func (r *warningRepo) Create(ctx context.Context, warning *entity.Warning) error {
	query := `
		INSERT INTO warnings (team_id, id, user_id, moderator_id, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		warning.TeamID,
		warning.ID,
		warning.UserID,
		warning.ModeratorID,
		warning.Reason,
		toMillis(warning.CreatedAt),
	)
	if isConstraintViolation(err) {
		return domain.ErrWarningIDTaken
	}
	if err != nil {
		return fmt.Errorf("failed to create warning: %w", err)
	}

	return nil
}

// ListByUser returns the member's warnings, oldest first
func (r *warningRepo) ListByUser(ctx context.Context, teamID, userID string) ([]*entity.Warning, error) {
	query := `
		SELECT id, team_id, user_id, moderator_id, reason, created_at
		FROM warnings
		WHERE team_id = ? AND user_id = ?
		ORDER BY created_at ASC, rowid ASC
	`

	rows, err := r.db.QueryContext(ctx, query, teamID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list warnings: %w", err)
	}
	defer rows.Close()

	var warnings []*entity.Warning
	for rows.Next() {
		warning := &entity.Warning{}
		var created int64
		err := rows.Scan(
			&warning.ID,
			&warning.TeamID,
			&warning.UserID,
			&warning.ModeratorID,
			&warning.Reason,
			&created,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan warning: %w", err)
		}
		warning.CreatedAt = fromMillis(created)
		warnings = append(warnings, warning)
	}

	return warnings, rows.Err()
}

func (r *warningRepo) Delete(ctx context.Context, teamID, warningID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM warnings WHERE team_id = ? AND id = ?`, teamID, warningID)
	if err != nil {
		return false, fmt.Errorf("failed to delete warning: %w", err)
	}

	return affected(result)
}
