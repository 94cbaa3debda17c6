package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
)

//go:generate mockgen -package mocks -source=service.go -destination=../../../mocks/service_mock.go

// StaffService is the lifecycle surface used by the command handlers
type StaffService interface {
	SetupOrganization(ctx context.Context, teamID string) (*entity.Organization, error)
	UpdateConfig(ctx context.Context, teamID, configType, value string) (*entity.Config, error)
	CanManage(ctx context.Context, teamID, userID string) (bool, error)
	CanUseShiftCommands(ctx context.Context, teamID, userID string) (bool, error)

	CheckShiftEligibility(ctx context.Context, teamID, userID string) (*entity.ShiftEligibility, error)
	StartShift(ctx context.Context, teamID, userID string, duration time.Duration, label string) (*entity.Shift, error)
	ExtendShift(ctx context.Context, teamID, userID string, extension time.Duration) (*entity.Shift, error)
	EndShift(ctx context.Context, teamID, userID string) (*entity.ClosedShift, error)
	GetShift(ctx context.Context, teamID, userID string) (*entity.Shift, error)
	ListActiveShifts(ctx context.Context, teamID string) ([]*entity.Shift, error)
	IncrementMessageCount(ctx context.Context, teamID, userID string) error

	HasActiveLOA(ctx context.Context, teamID, userID string) (bool, error)
	ValidateLOARequest(ctx context.Context, teamID, userID string) error
	RequestLOA(ctx context.Context, teamID, userID string, duration time.Duration, label, reason string) (*entity.LOARequest, error)
	StartLOA(ctx context.Context, teamID, userID string, endTime time.Time, reason string) (*entity.LOA, error)
	DenyLOA(ctx context.Context, teamID, managerID, userID string) error
	EndLOA(ctx context.Context, teamID, userID string) (*entity.ClosedLOA, error)

	RecordModerationAction(ctx context.Context, teamID, moderatorID string, action entity.ModerationAction, targetID, reason string) (*entity.ModerationLogEntry, error)
	ListModerationLog(ctx context.Context, teamID string, action entity.ModerationAction, limit int) ([]*entity.ModerationLogEntry, error)
	Leaderboard(ctx context.Context, teamID string, sortBy entity.LeaderboardSort) ([]*entity.StaffStats, error)
	GetStats(ctx context.Context, teamID, userID string) (*entity.StaffStats, error)
	SubmitReport(ctx context.Context, teamID, reporterID, targetID, reason string) error

	AddWarning(ctx context.Context, teamID, moderatorID, userID, reason string) (*entity.Warning, error)
	ListWarnings(ctx context.Context, teamID, userID string) ([]*entity.Warning, error)
	RemoveWarning(ctx context.Context, teamID, warningID string) error

	SubmitResignation(ctx context.Context, teamID, userID, reason string) error
	DecideResignation(ctx context.Context, teamID, managerID, userID string, decision entity.ResignationDecision) error
}

// Scheduler runs the periodic reconciliation sweep
type Scheduler interface {
	Start()
	Stop()
}
