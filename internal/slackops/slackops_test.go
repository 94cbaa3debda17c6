package slackops

import (
	"context"
	"testing"

	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/mocks"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	_ contract.RoleSync = (*RoleSync)(nil)
	_ contract.Notifier = (*Notifier)(nil)
)

func TestRoleSync_Grant(t *testing.T) {
	tests := []struct {
		name       string
		members    []string
		getErr     error
		wantUpdate string
		wantErr    bool
	}{
		{
			name:       "Should add the member to the group",
			members:    []string{"U1", "U2"},
			wantUpdate: "U1,U2,U3",
		},
		{
			name:    "Should skip a member already in the group",
			members: []string{"U3"},
		},
		{
			name:    "Should return lookup failures",
			getErr:  assert.AnError,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockSlackClient(ctrl)

			client.EXPECT().GetUserGroupMembersContext(gomock.Any(), "S1").Return(tt.members, tt.getErr).Times(1)
			if tt.wantUpdate != "" {
				client.EXPECT().
					UpdateUserGroupMembersContext(gomock.Any(), "S1", tt.wantUpdate).
					Return(slack.UserGroup{ID: "S1"}, nil).Times(1)
			}

			err := NewRoleSync(client, zap.NewNop()).Grant(context.Background(), "S1", "U3")
			if tt.wantErr {
				assert.ErrorIs(t, err, assert.AnError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRoleSync_Revoke(t *testing.T) {
	tests := []struct {
		name       string
		members    []string
		wantUpdate string
		updateErr  error
		wantErr    bool
	}{
		{
			name:       "Should remove the member from the group",
			members:    []string{"U1", "U3", "U2"},
			wantUpdate: "U1,U2",
		},
		{
			name:    "Should skip a member not in the group",
			members: []string{"U1"},
		},
		{
			name:       "Should return update failures",
			members:    []string{"U3"},
			wantUpdate: "",
			updateErr:  assert.AnError,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockSlackClient(ctrl)

			client.EXPECT().GetUserGroupMembersContext(gomock.Any(), "S1").Return(tt.members, nil).Times(1)
			if tt.wantUpdate != "" || tt.updateErr != nil {
				client.EXPECT().
					UpdateUserGroupMembersContext(gomock.Any(), "S1", tt.wantUpdate).
					Return(slack.UserGroup{}, tt.updateErr).Times(1)
			}

			err := NewRoleSync(client, zap.NewNop()).Revoke(context.Background(), "S1", "U3")
			if tt.wantErr {
				assert.ErrorIs(t, err, assert.AnError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRoleSync_HasRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockSlackClient(ctrl)
	roles := NewRoleSync(client, zap.NewNop())

	client.EXPECT().GetUserGroupMembersContext(gomock.Any(), "S1").Return([]string{"U1", "U2"}, nil).Times(2)
	client.EXPECT().GetUserGroupMembersContext(gomock.Any(), "S2").Return(nil, assert.AnError).Times(1)

	held, err := roles.HasRole(context.Background(), "S1", "U2")
	require.NoError(t, err)
	assert.True(t, held)

	held, err = roles.HasRole(context.Background(), "S1", "U9")
	require.NoError(t, err)
	assert.False(t, held)

	_, err = roles.HasRole(context.Background(), "S2", "U1")
	assert.Error(t, err)
}

func TestNotifier_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockSlackClient(ctrl)
	notifier := NewNotifier(client)

	client.EXPECT().
		PostMessageContext(gomock.Any(), "U1", gomock.Any(), gomock.Any()).
		Return("U1", "1700000000.000100", nil).Times(1)
	client.EXPECT().
		PostMessageContext(gomock.Any(), "C1", gomock.Any(), gomock.Any()).
		Return("", "", assert.AnError).Times(1)

	require.NoError(t, notifier.Notify(context.Background(), "U1", "hello"))

	err := notifier.Notify(context.Background(), "C1", "hello")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "C1")
}
