package database

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarningRepo_CreateAndList(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	createTestOrganization(t, db, "T1")
	createTestOrganization(t, db, "T2")
	repo := newWarningRepo(db.conn)

	for i, w := range []*entity.Warning{
		{ID: "AAA111", TeamID: "T1", UserID: "U1", ModeratorID: "M1", Reason: "spam"},
		{ID: "BBB222", TeamID: "T1", UserID: "U1", ModeratorID: "M2", Reason: "insults"},
		{ID: "CCC333", TeamID: "T1", UserID: "U2", ModeratorID: "M1", Reason: "flood"},
		{ID: "AAA111", TeamID: "T2", UserID: "U1", ModeratorID: "M1", Reason: "other team"},
	} {
		w.CreatedAt = testStart.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, w))
	}

	warnings, err := repo.ListByUser(ctx, "T1", "U1")
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Equal(t, "AAA111", warnings[0].ID)
	assert.Equal(t, "spam", warnings[0].Reason)
	assert.Equal(t, "M1", warnings[0].ModeratorID)
	assert.True(t, testStart.Equal(warnings[0].CreatedAt))
	assert.Equal(t, "BBB222", warnings[1].ID)

	t.Run("should reject a duplicate id in the same organization", func(t *testing.T) {
		err := repo.Create(ctx, &entity.Warning{ID: "BBB222", TeamID: "T1", UserID: "U3", ModeratorID: "M1", CreatedAt: testStart})
		assert.ErrorIs(t, err, domain.ErrWarningIDTaken)
	})

	t.Run("should require an existing organization", func(t *testing.T) {
		err := repo.Create(ctx, &entity.Warning{ID: "ZZZ999", TeamID: "T404", UserID: "U1", ModeratorID: "M1", CreatedAt: testStart})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrWarningIDTaken)
	})

	t.Run("should return nothing for a member without warnings", func(t *testing.T) {
		none, err := repo.ListByUser(ctx, "T1", "U9")
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestWarningRepo_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	createTestOrganization(t, db, "T1")
	createTestOrganization(t, db, "T2")
	repo := newWarningRepo(db.conn)

	require.NoError(t, repo.Create(ctx, &entity.Warning{ID: "AAA111", TeamID: "T1", UserID: "U1", ModeratorID: "M1", CreatedAt: testStart}))

	deleted, err := repo.Delete(ctx, "T2", "AAA111")
	require.NoError(t, err)
	assert.False(t, deleted, "Expected another organization's warning to be untouched")

	deleted, err = repo.Delete(ctx, "T1", "AAA111")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "T1", "AAA111")
	require.NoError(t, err)
	assert.False(t, deleted)
}
