package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/diegoclair/slack-shift-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestEffects_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	roles := mocks.NewMockRoleSync(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	fx := newEffects(roles, notifier, time.Second, zap.NewNop())

	gomock.InOrder(
		roles.EXPECT().Grant(gomock.Any(), "S1", "U1").Return(assert.AnError),
		roles.EXPECT().Revoke(gomock.Any(), "S2", "U1").Return(nil),
		notifier.EXPECT().Notify(gomock.Any(), "C1", "hello").Return(nil),
		notifier.EXPECT().Notify(gomock.Any(), "U1", "direct").Return(nil),
	)

	intents := []entity.Intent{
		grantIntent("T1", "U1", "S1"),
		grantIntent("T1", "U1", ""),
		revokeIntent("T1", "U1", "S2"),
		notifyIntent("T1", "U1", "C1", "hello"),
		notifyIntent("T1", "U1", "", "direct"),
		{Kind: entity.IntentKind("teleport"), TeamID: "T1", UserID: "U1"},
	}

	// the failed grant and the unknown kind do not stop the rest
	assert.Equal(t, 2, fx.Execute(context.Background(), intents))
}

func TestEffects_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	roles := mocks.NewMockRoleSync(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	fx := newEffects(roles, notifier, 20*time.Millisecond, zap.NewNop())

	notifier.EXPECT().
		Notify(gomock.Any(), "U1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, target, message string) error {
			<-ctx.Done()
			return ctx.Err()
		}).Times(1)

	start := time.Now()
	err := fx.run(context.Background(), notifyIntent("T1", "U1", "", "slow"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSideEffectFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
