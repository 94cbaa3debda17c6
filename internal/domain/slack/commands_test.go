package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantSub  string
		wantArgs []string
		wantErr  bool
	}{
		{name: "Should default to help on empty text", text: "  ", wantType: CmdHelp},
		{name: "Should parse shift start", text: "shift start 2h", wantType: CmdShift, wantSub: SubStart, wantArgs: []string{"2h"}},
		{name: "Should parse shift end without args", text: "shift END", wantType: CmdShift, wantSub: SubEnd},
		{name: "Should parse loa request with reason", text: "loa request 1w family trip", wantType: CmdLOA, wantSub: SubRequest, wantArgs: []string{"1w", "family", "trip"}},
		{name: "Should parse loa approve", text: "loa approve <@U123|bob> 2d sick", wantType: CmdLOA, wantSub: SubApprove, wantArgs: []string{"<@U123|bob>", "2d", "sick"}},
		{name: "Should accept leaderboard alias", text: "leaderboard messages", wantType: CmdStats, wantArgs: []string{"messages"}},
		{name: "Should parse config show", text: "config", wantType: CmdConfig},
		{name: "Should parse active", text: "active", wantType: CmdActive},
		{name: "Should parse record", text: "record ban <@U1> spam", wantType: CmdRecord, wantArgs: []string{"ban", "<@U1>", "spam"}},
		{name: "Should parse warn", text: "warn <@U1> rude language", wantType: CmdWarn, wantArgs: []string{"<@U1>", "rude", "language"}},
		{name: "Should parse warnings", text: "warnings <@U1>", wantType: CmdWarnings, wantArgs: []string{"<@U1>"}},
		{name: "Should accept remove_warning alias", text: "remove_warning abc123", wantType: CmdUnwarn, wantArgs: []string{"abc123"}},
		{name: "Should parse resign with reason", text: "resign moving abroad", wantType: CmdResign, wantArgs: []string{"moving", "abroad"}},
		{name: "Should parse resignation accept", text: "resignation Accept <@U1>", wantType: CmdResignation, wantSub: SubAccept, wantArgs: []string{"<@U1>"}},
		{name: "Should fail on resignation without decision", text: "resignation", wantErr: true},
		{name: "Should fail on unknown command", text: "dance", wantErr: true},
		{name: "Should fail on missing subcommand", text: "shift", wantErr: true},
		{name: "Should fail on unknown subcommand", text: "loa cancel", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cmd)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantSub, cmd.Sub)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestCommand_Rest(t *testing.T) {
	cmd, err := ParseCommand("report <@U1> spamming the   general channel")
	require.NoError(t, err)

	assert.Equal(t, "spamming the general channel", cmd.Rest(1))
	assert.Equal(t, "", cmd.Rest(10))
}

func TestParseRefs(t *testing.T) {
	tests := []struct {
		name   string
		parse  func(string) (string, bool)
		text   string
		wantID string
		wantOK bool
	}{
		{name: "user mention with name", parse: ParseUserMention, text: "<@U123ABC|alice>", wantID: "U123ABC", wantOK: true},
		{name: "user mention without name", parse: ParseUserMention, text: "<@W999>", wantID: "W999", wantOK: true},
		{name: "bare user id", parse: ParseUserMention, text: "U123ABC", wantID: "U123ABC", wantOK: true},
		{name: "plain name is not a user", parse: ParseUserMention, text: "@alice", wantOK: false},
		{name: "channel ref", parse: ParseChannelRef, text: "<#C0123|staff-mgmt>", wantID: "C0123", wantOK: true},
		{name: "bare channel id", parse: ParseChannelRef, text: "C0123", wantID: "C0123", wantOK: true},
		{name: "user is not a channel", parse: ParseChannelRef, text: "<@U123>", wantOK: false},
		{name: "group ref", parse: ParseGroupRef, text: "<!subteam^S0456|@on-duty>", wantID: "S0456", wantOK: true},
		{name: "bare group id", parse: ParseGroupRef, text: " S0456 ", wantID: "S0456", wantOK: true},
		{name: "channel is not a group", parse: ParseGroupRef, text: "<#C0123>", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tt.parse(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
