package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_staffService_HasActiveLOA(t *testing.T) {
	tests := []struct {
		name string
		loa  *entity.LOA
		want bool
	}{
		{name: "Should be false without a record", loa: nil, want: false},
		{name: "Should be true before the end time", loa: &entity.LOA{EndTime: testNow.Add(time.Second)}, want: true},
		{name: "Should be false at the end time", loa: &entity.LOA{EndTime: testNow}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			m.mockLOARepo.EXPECT().Get(gomock.Any(), "T1", "U1").Return(tt.loa, nil).Times(1)

			got, err := svc.HasActiveLOA(context.Background(), "T1", "U1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_staffService_RequestLOA(t *testing.T) {
	tests := []struct {
		name      string
		buildMock func(mocks allMocks)
		wantErr   error
	}{
		{
			name: "Should post the application to the management channel",
			buildMock: func(mocks allMocks) {
				mocks.mockOrgRepo.EXPECT().GetByTeamID(gomock.Any(), "T1").
					Return(testOrganization(entity.Config{ManagementChannelID: "C_MGMT"}), nil).Times(1)
				mocks.mockShiftRepo.EXPECT().Get(gomock.Any(), "T1", "U1").Return(nil, nil).Times(1)
				mocks.mockLOARepo.EXPECT().Get(gomock.Any(), "T1", "U1").Return(nil, nil).Times(1)
				mocks.mockNotifier.EXPECT().
					Notify(gomock.Any(), "C_MGMT", gomock.Any()).
					DoAndReturn(func(ctx context.Context, target, message string) error {
						assert.Contains(t, message, "<@U1>")
						assert.Contains(t, message, "family trip")
						assert.Contains(t, message, "/staff loa approve <@U1> 3d")
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should reject a member on shift",
			buildMock: func(mocks allMocks) {
				mocks.mockOrgRepo.EXPECT().GetByTeamID(gomock.Any(), "T1").
					Return(testOrganization(entity.Config{ManagementChannelID: "C_MGMT"}), nil).Times(1)
				mocks.mockShiftRepo.EXPECT().Get(gomock.Any(), "T1", "U1").Return(&entity.Shift{}, nil).Times(1)
			},
			wantErr: domain.ErrAlreadyOnShift,
		},
		{
			name: "Should reject a member already on leave",
			buildMock: func(mocks allMocks) {
				mocks.mockOrgRepo.EXPECT().GetByTeamID(gomock.Any(), "T1").
					Return(testOrganization(entity.Config{ManagementChannelID: "C_MGMT"}), nil).Times(1)
				mocks.mockShiftRepo.EXPECT().Get(gomock.Any(), "T1", "U1").Return(nil, nil).Times(1)
				mocks.mockLOARepo.EXPECT().Get(gomock.Any(), "T1", "U1").
					Return(&entity.LOA{EndTime: testNow.Add(time.Hour)}, nil).Times(1)
			},
			wantErr: domain.ErrAlreadyOnLeave,
		},
		{
			name: "Should require a management channel",
			buildMock: func(mocks allMocks) {
				mocks.mockOrgRepo.EXPECT().GetByTeamID(gomock.Any(), "T1").
					Return(testOrganization(entity.Config{}), nil).Times(1)
				mocks.mockShiftRepo.EXPECT().Get(gomock.Any(), "T1", "U1").Return(nil, nil).Times(1)
				mocks.mockLOARepo.EXPECT().Get(gomock.Any(), "T1", "U1").Return(nil, nil).Times(1)
			},
			wantErr: domain.ErrManagementChannelNotConfigured,
		},
		{
			name: "Should return delivery failures",
			buildMock: func(mocks allMocks) {
				mocks.mockOrgRepo.EXPECT().GetByTeamID(gomock.Any(), "T1").
					Return(testOrganization(entity.Config{ManagementChannelID: "C_MGMT"}), nil).Times(1)
				mocks.mockShiftRepo.EXPECT().Get(gomock.Any(), "T1", "U1").Return(nil, nil).Times(1)
				mocks.mockLOARepo.EXPECT().Get(gomock.Any(), "T1", "U1").Return(nil, nil).Times(1)
				mocks.mockNotifier.EXPECT().Notify(gomock.Any(), "C_MGMT", gomock.Any()).Return(assert.AnError).Times(1)
			},
			wantErr: domain.ErrSideEffectFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			req, err := svc.RequestLOA(context.Background(), "T1", "U1", 3*domain.Day, "3d", "family trip")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testNow.Add(3*domain.Day), req.EndTime)
		})
	}
}

func Test_staffService_StartLOA(t *testing.T) {
	endTime := testNow.Add(2 * domain.Week)

	tests := []struct {
		name      string
		endTime   time.Time
		buildMock func(mocks allMocks)
		wantErr   error
	}{
		{
			name:    "Should record the leave and sync both groups",
			endTime: endTime,
			buildMock: func(mocks allMocks) {
				mocks.mockOrgRepo.EXPECT().GetByTeamID(gomock.Any(), "T1").
					Return(testOrganization(entity.Config{OnDutyGroupID: "S_DUTY", LOAGroupID: "S_LOA"}), nil).Times(1)
				mocks.mockShiftRepo.EXPECT().Get(gomock.Any(), "T1", "U1").Return(nil, nil).Times(1)
				mocks.mockLOARepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, loa *entity.LOA) error {
						assert.Equal(t, testNow, loa.StartTime)
						assert.Equal(t, endTime, loa.EndTime)
						assert.Equal(t, "vacation", loa.Reason)
						assert.Equal(t, "2 weeks", loa.DurationLabel)
						assert.False(t, loa.Notified)
						return nil
					}).Times(1)

				gomock.InOrder(
					mocks.mockRoleSync.EXPECT().Grant(gomock.Any(), "S_LOA", "U1").Return(nil),
					mocks.mockRoleSync.EXPECT().Revoke(gomock.Any(), "S_DUTY", "U1").Return(nil),
				)
				mocks.mockNotifier.EXPECT().Notify(gomock.Any(), "U1", gomock.Any()).Return(nil).Times(1)
			},
		},
		{
			name:    "Should close an active shift first",
			endTime: endTime,
			buildMock: func(mocks allMocks) {
				mocks.mockOrgRepo.EXPECT().GetByTeamID(gomock.Any(), "T1").
					Return(testOrganization(entity.Config{}), nil).Times(1)
				mocks.mockShiftRepo.EXPECT().Get(gomock.Any(), "T1", "U1").
					Return(&entity.Shift{TeamID: "T1", UserID: "U1", StartTime: testNow.Add(-time.Hour), EndTime: testNow.Add(time.Hour)}, nil).Times(1)
				mocks.mockShiftRepo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				mocks.mockStatsRepo.EXPECT().AddShift(gomock.Any(), "T1", "U1", int64(0), time.Hour).Return(nil).Times(1)
				mocks.mockShiftRepo.EXPECT().Delete(gomock.Any(), "T1", "U1").Return(true, nil).Times(1)
				mocks.mockLOARepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				mocks.mockNotifier.EXPECT().Notify(gomock.Any(), "U1", gomock.Any()).Return(assert.AnError).Times(1)
			},
		},
		{
			name:    "Should reject an end time in the past",
			endTime: testNow,
			buildMock: func(mocks allMocks) {
				mocks.mockOrgRepo.EXPECT().GetByTeamID(gomock.Any(), "T1").
					Return(testOrganization(entity.Config{}), nil).Times(1)
			},
			wantErr: domain.ErrInvalidDuration,
		},
		{
			name:    "Should wrap store errors",
			endTime: endTime,
			buildMock: func(mocks allMocks) {
				mocks.mockOrgRepo.EXPECT().GetByTeamID(gomock.Any(), "T1").
					Return(testOrganization(entity.Config{}), nil).Times(1)
				mocks.mockShiftRepo.EXPECT().Get(gomock.Any(), "T1", "U1").Return(nil, nil).Times(1)
				mocks.mockLOARepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1)
			},
			wantErr: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			loa, err := svc.StartLOA(context.Background(), "T1", "U1", tt.endTime, "vacation")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, loa)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.endTime, loa.EndTime)
		})
	}
}

func Test_staffService_DenyLOA(t *testing.T) {
	m, svc, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockNotifier.EXPECT().
		Notify(gomock.Any(), "U1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, target, message string) error {
			assert.Contains(t, message, "denied")
			assert.Contains(t, message, "<@M1>")
			return nil
		}).Times(1)

	require.NoError(t, svc.DenyLOA(context.Background(), "T1", "M1", "U1"))
}

func Test_staffService_EndLOA(t *testing.T) {
	loa := &entity.LOA{
		TeamID:    "T1",
		UserID:    "U1",
		StartTime: testNow.Add(-2 * domain.Day),
		EndTime:   testNow.Add(5 * domain.Day),
	}

	tests := []struct {
		name      string
		buildMock func(mocks allMocks)
		wantErr   error
	}{
		{
			name: "Should remove the leave and revoke the leave group",
			buildMock: func(mocks allMocks) {
				mocks.mockLOARepo.EXPECT().Get(gomock.Any(), "T1", "U1").Return(loa, nil).Times(1)
				mocks.mockLOARepo.EXPECT().Delete(gomock.Any(), "T1", "U1").Return(true, nil).Times(1)
				mocks.mockOrgRepo.EXPECT().GetByTeamID(gomock.Any(), "T1").
					Return(testOrganization(entity.Config{LOAGroupID: "S_LOA"}), nil).Times(1)
				mocks.mockRoleSync.EXPECT().Revoke(gomock.Any(), "S_LOA", "U1").Return(nil).Times(1)
			},
		},
		{
			name: "Should return NoActiveLeave without a record",
			buildMock: func(mocks allMocks) {
				mocks.mockLOARepo.EXPECT().Get(gomock.Any(), "T1", "U1").Return(nil, nil).Times(1)
			},
			wantErr: domain.ErrNoActiveLeave,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			closed, err := svc.EndLOA(context.Background(), "T1", "U1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2*domain.Day, closed.Actual)
			assert.Equal(t, 7*domain.Day, closed.Scheduled)
		})
	}
}

func Test_staffService_SubmitReport(t *testing.T) {
	m, svc, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	org := testOrganization(entity.Config{ReportChannelID: "C_REP", ReportCooldownSeconds: 60})
	m.mockOrgRepo.EXPECT().GetByTeamID(gomock.Any(), "T1").Return(org, nil).AnyTimes()

	gomock.InOrder(
		m.mockNotifier.EXPECT().Notify(gomock.Any(), "C_REP", gomock.Any()).Return(assert.AnError),
		m.mockNotifier.EXPECT().Notify(gomock.Any(), "C_REP", gomock.Any()).Return(nil),
	)

	ctx := context.Background()

	// a failed post does not start the cooldown
	err := svc.SubmitReport(ctx, "T1", "U1", "U9", "spam")
	assert.ErrorIs(t, err, domain.ErrSideEffectFailed)

	require.NoError(t, svc.SubmitReport(ctx, "T1", "U1", "U9", "spam"))

	err = svc.SubmitReport(ctx, "T1", "U1", "U9", "spam again")
	require.ErrorIs(t, err, domain.ErrReportCooldown)

	var cooldown *domain.CooldownError
	require.True(t, errors.As(err, &cooldown))
	assert.Equal(t, int64(60), cooldown.Seconds())
}

func Test_staffService_SubmitReport_NoChannel(t *testing.T) {
	m, svc, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockOrgRepo.EXPECT().GetByTeamID(gomock.Any(), "T1").Return(testOrganization(entity.Config{}), nil).Times(1)

	err := svc.SubmitReport(context.Background(), "T1", "U1", "U9", "spam")
	assert.ErrorIs(t, err, domain.ErrReportChannelNotConfigured)
}
