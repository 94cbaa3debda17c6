package slackops

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"go.uber.org/zap"
)

// RoleSync mirrors shift and leave state onto Slack user groups. A role ID is a user group ID.
//
// Slack only offers a full replace of the member list, so membership changes
// are read-modify-write and serialized within the process.
type RoleSync struct {
	client contract.SlackClient
	log    *zap.Logger
	mu     sync.Mutex
}

func NewRoleSync(client contract.SlackClient, log *zap.Logger) *RoleSync {
	return &RoleSync{client: client, log: log}
}

func (r *RoleSync) Grant(ctx context.Context, roleID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, err := r.client.GetUserGroupMembersContext(ctx, roleID)
	if err != nil {
		return fmt.Errorf("failed to get members of %s: %w", roleID, err)
	}
	if slices.Contains(members, userID) {
		return nil
	}

	return r.update(ctx, roleID, append(members, userID))
}

// Revoke removes the member from the group. Slack refuses to empty a user group,
// so removing the last member fails and is reported like any other side effect.
func (r *RoleSync) Revoke(ctx context.Context, roleID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, err := r.client.GetUserGroupMembersContext(ctx, roleID)
	if err != nil {
		return fmt.Errorf("failed to get members of %s: %w", roleID, err)
	}

	remaining := slices.DeleteFunc(slices.Clone(members), func(m string) bool { return m == userID })
	if len(remaining) == len(members) {
		return nil
	}

	return r.update(ctx, roleID, remaining)
}

func (r *RoleSync) HasRole(ctx context.Context, roleID, userID string) (bool, error) {
	members, err := r.client.GetUserGroupMembersContext(ctx, roleID)
	if err != nil {
		return false, fmt.Errorf("failed to get members of %s: %w", roleID, err)
	}
	return slices.Contains(members, userID), nil
}

func (r *RoleSync) update(ctx context.Context, roleID string, members []string) error {
	if _, err := r.client.UpdateUserGroupMembersContext(ctx, roleID, strings.Join(members, ",")); err != nil {
		return fmt.Errorf("failed to update members of %s: %w", roleID, err)
	}

	r.log.Debug("user group updated", zap.String("group_id", roleID), zap.Int("members", len(members)))
	return nil
}
