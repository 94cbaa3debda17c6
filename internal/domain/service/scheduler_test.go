package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	_ contract.StaffService = (*staffService)(nil)
	_ contract.Scheduler    = (*scheduler)(nil)
)

func TestScheduler_SweepDeliversIntents(t *testing.T) {
	env := newSQLiteEnv(t)
	ctx := context.Background()
	env.setupOrganization(t, "G1", entity.Config{})

	_, err := env.svc.StartShift(ctx, "G1", "U1", time.Hour, "1h")
	require.NoError(t, err)

	env.clock.Set(testNow.Add(2 * time.Hour))

	delivered := make(chan string, 1)
	env.notifier.EXPECT().
		Notify(gomock.Any(), "U1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, target, message string) error {
			delivered <- message
			return nil
		}).Times(1)

	fx := newEffects(env.roles, env.notifier, time.Second, zap.NewNop())
	s := newScheduler(env.dm, env.rec, fx, 10*time.Millisecond, env.clock.Now, zap.NewNop())

	s.Start()
	s.Start()

	select {
	case msg := <-delivered:
		assert.Contains(t, msg, "automatically ended")
	case <-time.After(2 * time.Second):
		t.Fatal("expired shift was not swept")
	}

	// let a few more ticks run to prove the shift is closed only once
	time.Sleep(50 * time.Millisecond)

	s.Stop()
	s.Stop()

	history, err := env.dm.Shift().ListHistory(ctx, "G1")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	env := newSQLiteEnv(t)
	fx := newEffects(env.roles, env.notifier, time.Second, zap.NewNop())
	s := newScheduler(env.dm, env.rec, fx, time.Hour, env.clock.Now, zap.NewNop())

	s.Stop()

	s.Start()
	s.Stop()
	assert.False(t, s.running)
}

func TestNewInstance_Defaults(t *testing.T) {
	env := newSQLiteEnv(t)

	instance := NewInstance(env.dm, env.roles, env.notifier, zap.NewNop(), Options{})
	require.NotNil(t, instance.Staff)
	assert.Equal(t, 5*time.Minute, instance.Reconciler.reminderWindow)
	assert.Equal(t, 1, instance.Reconciler.concurrency)
	assert.Equal(t, 30*time.Second, instance.Scheduler.interval)
	assert.Equal(t, 10*time.Second, instance.Staff.effects.timeout)
}
