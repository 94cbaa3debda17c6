package contract

import (
	"context"

	"github.com/slack-go/slack"
)

//go:generate mockgen -package mocks -source=slack.go -destination=../../../mocks/slack_mock.go

// SlackClient defines the subset of the Slack Web API used by the bot.
// It allows mocking in tests while *slack.Client satisfies it in production.
type SlackClient interface {
	// PostMessageContext sends a message to a channel, or to the app DM when channelID is a user ID
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)

	// GetUserGroupMembersContext lists the members of a user group
	GetUserGroupMembersContext(ctx context.Context, userGroup string, options ...slack.GetUserGroupMembersOption) ([]string, error)

	// UpdateUserGroupMembersContext replaces the members of a user group with a comma separated list
	UpdateUserGroupMembersContext(ctx context.Context, userGroup string, members string, options ...slack.UpdateUserGroupMembersOption) (slack.UserGroup, error)
}

// RoleSync grants and revokes the platform marker that mirrors shift or leave state
type RoleSync interface {
	Grant(ctx context.Context, roleID, userID string) error
	Revoke(ctx context.Context, roleID, userID string) error
	HasRole(ctx context.Context, roleID, userID string) (bool, error)
}

// Notifier delivers a message to a member or channel
type Notifier interface {
	Notify(ctx context.Context, target, message string) error
}
