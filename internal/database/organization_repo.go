package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
)

type organizationRepo struct {
	db dbConn
}

func newOrganizationRepo(db dbConn) contract.OrganizationRepo {
	return &organizationRepo{db: db}
}

func (r *organizationRepo) Create(ctx context.Context, org *entity.Organization) error {
	query := `
		INSERT INTO organizations (team_id, on_duty_group_id, loa_group_id,
			management_channel_id, report_channel_id, report_cooldown_seconds,
			manager_group_ids, allowed_group_ids)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	managers, allowed, err := marshalGroups(org.Config)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		org.TeamID,
		org.Config.OnDutyGroupID,
		org.Config.LOAGroupID,
		org.Config.ManagementChannelID,
		org.Config.ReportChannelID,
		org.Config.ReportCooldownSeconds,
		managers,
		allowed,
	)
	if err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}

	return nil
}

func (r *organizationRepo) GetByTeamID(ctx context.Context, teamID string) (*entity.Organization, error) {
	org := &entity.Organization{}
	query := `
		SELECT team_id, on_duty_group_id, loa_group_id, management_channel_id,
			report_channel_id, report_cooldown_seconds, manager_group_ids,
			allowed_group_ids, created_at, updated_at
		FROM organizations
		WHERE team_id = ?
	`

	var managersJSON, allowedJSON string
	err := r.db.QueryRowContext(ctx, query, teamID).Scan(
		&org.TeamID,
		&org.Config.OnDutyGroupID,
		&org.Config.LOAGroupID,
		&org.Config.ManagementChannelID,
		&org.Config.ReportChannelID,
		&org.Config.ReportCooldownSeconds,
		&managersJSON,
		&allowedJSON,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if err := json.Unmarshal([]byte(managersJSON), &org.Config.ManagerGroupIDs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manager groups: %w", err)
	}
	if err := json.Unmarshal([]byte(allowedJSON), &org.Config.AllowedGroupIDs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal allowed groups: %w", err)
	}

	return org, nil
}

func (r *organizationRepo) UpdateConfig(ctx context.Context, teamID string, cfg entity.Config) error {
	query := `
		UPDATE organizations SET
			on_duty_group_id = ?,
			loa_group_id = ?,
			management_channel_id = ?,
			report_channel_id = ?,
			report_cooldown_seconds = ?,
			manager_group_ids = ?,
			allowed_group_ids = ?,
			updated_at = ?
		WHERE team_id = ?
	`

	managers, allowed, err := marshalGroups(cfg)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		cfg.OnDutyGroupID,
		cfg.LOAGroupID,
		cfg.ManagementChannelID,
		cfg.ReportChannelID,
		cfg.ReportCooldownSeconds,
		managers,
		allowed,
		time.Now(),
		teamID,
	)
	if err != nil {
		return fmt.Errorf("failed to update organization config: %w", err)
	}

	return nil
}

func (r *organizationRepo) ListTeamIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT team_id FROM organizations ORDER BY team_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var teamIDs []string
	for rows.Next() {
		var teamID string
		if err := rows.Scan(&teamID); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		teamIDs = append(teamIDs, teamID)
	}

	return teamIDs, rows.Err()
}

func marshalGroups(cfg entity.Config) (string, string, error) {
	managers := cfg.ManagerGroupIDs
	if managers == nil {
		managers = []string{}
	}
	allowed := cfg.AllowedGroupIDs
	if allowed == nil {
		allowed = []string{}
	}

	managersJSON, err := json.Marshal(managers)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal manager groups: %w", err)
	}
	allowedJSON, err := json.Marshal(allowed)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal allowed groups: %w", err)
	}

	return string(managersJSON), string(allowedJSON), nil
}
