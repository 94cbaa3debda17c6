package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/database"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/diegoclair/slack-shift-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockOrgRepo     *mocks.MockOrganizationRepo
	mockShiftRepo   *mocks.MockShiftRepo
	mockLOARepo     *mocks.MockLOARepo
	mockStatsRepo   *mocks.MockStatsRepo
	mockWarningRepo *mocks.MockWarningRepo
	mockRoleSync    *mocks.MockRoleSync
	mockNotifier    *mocks.MockNotifier
}

func newServiceTestMock(t *testing.T) (m allMocks, svc *staffService, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	orgRepo := mocks.NewMockOrganizationRepo(ctrl)
	dm.EXPECT().Organization().Return(orgRepo).AnyTimes()

	shiftRepo := mocks.NewMockShiftRepo(ctrl)
	dm.EXPECT().Shift().Return(shiftRepo).AnyTimes()

	loaRepo := mocks.NewMockLOARepo(ctrl)
	dm.EXPECT().LOA().Return(loaRepo).AnyTimes()

	statsRepo := mocks.NewMockStatsRepo(ctrl)
	dm.EXPECT().Stats().Return(statsRepo).AnyTimes()

	warningRepo := mocks.NewMockWarningRepo(ctrl)
	dm.EXPECT().Warning().Return(warningRepo).AnyTimes()

	dm.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockOrgRepo:     orgRepo,
		mockShiftRepo:   shiftRepo,
		mockLOARepo:     loaRepo,
		mockStatsRepo:   statsRepo,
		mockWarningRepo: warningRepo,
		mockRoleSync:    mocks.NewMockRoleSync(ctrl),
		mockNotifier:    mocks.NewMockNotifier(ctrl),
	}

	fx := newEffects(m.mockRoleSync, m.mockNotifier, time.Second, zap.NewNop())
	svc = newStaff(dm, m.mockRoleSync, fx, NewCooldowns(), func() time.Time { return testNow }, zap.NewNop())
	require.NotNil(t, svc)

	return
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type sqliteEnv struct {
	dm       contract.DataManager
	svc      *staffService
	rec      *Reconciler
	clock    *testClock
	roles    *mocks.MockRoleSync
	notifier *mocks.MockNotifier
}

// newSQLiteEnv wires the service and reconciler to an in-memory database
func newSQLiteEnv(t *testing.T) *sqliteEnv {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	ctrl := gomock.NewController(t)
	env := &sqliteEnv{
		dm:       database.NewInstance(db),
		clock:    &testClock{now: testNow},
		roles:    mocks.NewMockRoleSync(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}

	fx := newEffects(env.roles, env.notifier, time.Second, zap.NewNop())
	env.svc = newStaff(env.dm, env.roles, fx, NewCooldowns(), env.clock.Now, zap.NewNop())
	env.rec = newReconciler(env.dm, 5*time.Minute, 2, zap.NewNop())

	return env
}

func (e *sqliteEnv) setupOrganization(t *testing.T, teamID string, cfg entity.Config) {
	t.Helper()

	_, err := e.svc.SetupOrganization(context.Background(), teamID)
	require.NoError(t, err)
	require.NoError(t, e.dm.Organization().UpdateConfig(context.Background(), teamID, cfg))
}

func countKind(intents []entity.Intent, kind entity.IntentKind) int {
	n := 0
	for _, intent := range intents {
		if intent.Kind == kind {
			n++
		}
	}
	return n
}
