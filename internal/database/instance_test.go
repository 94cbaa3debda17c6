package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_WithTransaction(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	createTestOrganization(t, db, "T1")
	dm := NewInstance(db)

	shift := &entity.Shift{TeamID: "T1", UserID: "U1", StartTime: testStart, EndTime: testStart.Add(time.Hour)}

	t.Run("should roll back on error", func(t *testing.T) {
		errBoom := errors.New("boom")
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			require.NoError(t, tx.Shift().Create(ctx, shift))
			return errBoom
		})
		assert.ErrorIs(t, err, errBoom)

		found, err := dm.Shift().Get(ctx, "T1", "U1")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("should commit on success", func(t *testing.T) {
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.Shift().Create(ctx, shift); err != nil {
				return err
			}
			return tx.Stats().AddShift(ctx, "T1", "U1", 0, time.Minute)
		})
		require.NoError(t, err)

		found, err := dm.Shift().Get(ctx, "T1", "U1")
		require.NoError(t, err)
		assert.NotNil(t, found)
	})
}
