package database

import (
	"context"
	"testing"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestOrganization(t *testing.T, db *DB, teamID string) *entity.Organization {
	t.Helper()

	org := &entity.Organization{
		TeamID: teamID,
		Config: entity.Config{ReportCooldownSeconds: domain.DefaultReportCooldownSeconds},
	}
	err := newOrganizationRepo(db.conn).Create(context.Background(), org)
	require.NoError(t, err)

	return org
}

func TestOrganizationRepo_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newOrganizationRepo(db.conn)

	createTestOrganization(t, db, "T123456789")

	found, err := repo.GetByTeamID(ctx, "T123456789")
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, "T123456789", found.TeamID)
	assert.Equal(t, 60, found.Config.ReportCooldownSeconds)
	assert.Empty(t, found.Config.OnDutyGroupID)
	assert.Empty(t, found.Config.ManagerGroupIDs)
	assert.False(t, found.CreatedAt.IsZero())

	notFound, err := repo.GetByTeamID(ctx, "T000000000")
	require.NoError(t, err, "Unexpected error when organization not found")
	assert.Nil(t, notFound)
}

func TestOrganizationRepo_CreateDuplicate(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	createTestOrganization(t, db, "T123456789")

	err := newOrganizationRepo(db.conn).Create(context.Background(), &entity.Organization{TeamID: "T123456789"})
	assert.Error(t, err)
}

func TestOrganizationRepo_UpdateConfig(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newOrganizationRepo(db.conn)
	createTestOrganization(t, db, "T123456789")

	cfg := entity.Config{
		OnDutyGroupID:         "S111",
		LOAGroupID:            "S222",
		ManagementChannelID:   "C333",
		ReportChannelID:       "C444",
		ReportCooldownSeconds: 120,
		ManagerGroupIDs:       []string{"S555", "S666"},
		AllowedGroupIDs:       []string{"S777"},
	}

	err := repo.UpdateConfig(ctx, "T123456789", cfg)
	require.NoError(t, err)

	found, err := repo.GetByTeamID(ctx, "T123456789")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, cfg, found.Config)
}

func TestOrganizationRepo_ListTeamIDs(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newOrganizationRepo(db.conn)

	empty, err := repo.ListTeamIDs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, empty)

	createTestOrganization(t, db, "T2")
	createTestOrganization(t, db, "T1")

	teamIDs, err := repo.ListTeamIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"T1", "T2"}, teamIDs)
}
