package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
)

//go:generate mockgen -package mocks -source=repo.go -destination=../../../mocks/repo_mock.go

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Organization() OrganizationRepo
	Shift() ShiftRepo
	LOA() LOARepo
	Stats() StatsRepo
	Warning() WarningRepo
}

// OrganizationRepo defines the contract for organization repository
type OrganizationRepo interface {
	Create(ctx context.Context, org *entity.Organization) error
	GetByTeamID(ctx context.Context, teamID string) (*entity.Organization, error)
	UpdateConfig(ctx context.Context, teamID string, cfg entity.Config) error
	ListTeamIDs(ctx context.Context) ([]string, error)
}

// ShiftRepo defines the contract for active shifts and shift history
type ShiftRepo interface {
	Create(ctx context.Context, shift *entity.Shift) error
	Get(ctx context.Context, teamID, userID string) (*entity.Shift, error)
	ListByTeam(ctx context.Context, teamID string) (map[string]*entity.Shift, error)
	Delete(ctx context.Context, teamID, userID string) (bool, error)
	UpdateEndTime(ctx context.Context, teamID, userID string, endTime time.Time) error
	MarkReminded(ctx context.Context, teamID, userID string, endTime time.Time) (bool, error)
	IncrementMessages(ctx context.Context, teamID, userID string) (bool, error)
	AppendHistory(ctx context.Context, entry *entity.ShiftHistoryEntry) error
	ListHistory(ctx context.Context, teamID string) ([]*entity.ShiftHistoryEntry, error)
}

// LOARepo defines the contract for active leaves of absence
type LOARepo interface {
	Create(ctx context.Context, loa *entity.LOA) error
	Get(ctx context.Context, teamID, userID string) (*entity.LOA, error)
	ListByTeam(ctx context.Context, teamID string) (map[string]*entity.LOA, error)
	Delete(ctx context.Context, teamID, userID string) (bool, error)
	DeleteExpired(ctx context.Context, teamID, userID string, now time.Time) (bool, error)
	MarkNotified(ctx context.Context, teamID, userID string, now time.Time) (bool, error)
}

// StatsRepo defines the contract for staff statistics and the moderation log
type StatsRepo interface {
	Get(ctx context.Context, teamID, userID string) (*entity.StaffStats, error)
	ListByTeam(ctx context.Context, teamID string) ([]*entity.StaffStats, error)
	AddShift(ctx context.Context, teamID, userID string, messages int64, duration time.Duration) error
	RecordModeration(ctx context.Context, entry *entity.ModerationLogEntry) error
	ListModeration(ctx context.Context, teamID string, action entity.ModerationAction, limit int) ([]*entity.ModerationLogEntry, error)
}

// WarningRepo defines the contract for member warnings
type WarningRepo interface {
	Create(ctx context.Context, warning *entity.Warning) error
	ListByUser(ctx context.Context, teamID, userID string) ([]*entity.Warning, error)
	Delete(ctx context.Context, teamID, warningID string) (bool, error)
}
