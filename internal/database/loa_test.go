package database

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLOARepo_Lifecycle(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	createTestOrganization(t, db, "T1")
	repo := newLOARepo(db.conn)

	loa := &entity.LOA{
		TeamID:        "T1",
		UserID:        "U1",
		StartTime:     testStart,
		EndTime:       testStart.Add(7 * 24 * time.Hour),
		Reason:        "Family trip",
		DurationLabel: "1 week",
	}
	require.NoError(t, repo.Create(ctx, loa))

	found, err := repo.Get(ctx, "T1", "U1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Family trip", found.Reason)
	assert.Equal(t, "1 week", found.DurationLabel)
	assert.False(t, found.Notified)
	assert.True(t, loa.EndTime.Equal(found.EndTime))

	marked, err := repo.MarkNotified(ctx, "T1", "U1", testStart)
	require.NoError(t, err)
	assert.False(t, marked, "Expected an unexpired leave to stay unmarked")

	marked, err = repo.MarkNotified(ctx, "T1", "U1", loa.EndTime)
	require.NoError(t, err)
	assert.True(t, marked)

	all, err := repo.ListByTeam(ctx, "T1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all["U1"].Notified)

	deleted, err := repo.Delete(ctx, "T1", "U1")
	require.NoError(t, err)
	assert.True(t, deleted)

	gone, err := repo.Get(ctx, "T1", "U1")
	require.NoError(t, err)
	assert.Nil(t, gone)

	deleted, err = repo.Delete(ctx, "T1", "U1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestLOARepo_CreateReplacesStaleRecord(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	createTestOrganization(t, db, "T1")
	repo := newLOARepo(db.conn)

	require.NoError(t, repo.Create(ctx, &entity.LOA{TeamID: "T1", UserID: "U1", StartTime: testStart, EndTime: testStart.Add(time.Hour), Reason: "old"}))
	require.NoError(t, repo.Create(ctx, &entity.LOA{TeamID: "T1", UserID: "U1", StartTime: testStart, EndTime: testStart.Add(48 * time.Hour), Reason: "new"}))

	found, err := repo.Get(ctx, "T1", "U1")
	require.NoError(t, err)
	assert.Equal(t, "new", found.Reason)
}

func TestLOARepo_DeleteExpired(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	createTestOrganization(t, db, "T1")
	repo := newLOARepo(db.conn)

	end := testStart.Add(time.Hour)
	require.NoError(t, repo.Create(ctx, &entity.LOA{TeamID: "T1", UserID: "U1", StartTime: testStart, EndTime: end}))

	deleted, err := repo.DeleteExpired(ctx, "T1", "U1", end.Add(-time.Millisecond))
	require.NoError(t, err)
	assert.False(t, deleted)

	found, err := repo.Get(ctx, "T1", "U1")
	require.NoError(t, err)
	assert.NotNil(t, found)

	deleted, err = repo.DeleteExpired(ctx, "T1", "U1", end)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteExpired(ctx, "T1", "U1", end)
	require.NoError(t, err)
	assert.False(t, deleted)
}
