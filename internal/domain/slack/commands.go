package slack

import (
	"fmt"
	"regexp"
	"strings"
)

type CommandType string

const (
	CmdShift  CommandType = "shift"
	CmdActive CommandType = "active"
	CmdLOA    CommandType = "loa"
	CmdStats  CommandType = "stats"
	CmdRecord CommandType = "record"
	CmdModLog CommandType = "modlog"
	CmdReport CommandType = "report"
	CmdConfig CommandType = "config"
	CmdHelp   CommandType = "help"

	CmdWarn        CommandType = "warn"
	CmdWarnings    CommandType = "warnings"
	CmdUnwarn      CommandType = "unwarn"
	CmdResign      CommandType = "resign"
	CmdResignation CommandType = "resignation"
)

// Subcommands of shift, loa and resignation
const (
	SubStart   = "start"
	SubEnd     = "end"
	SubExtend  = "extend"
	SubStatus  = "status"
	SubRequest = "request"
	SubApprove = "approve"
	SubDeny    = "deny"
	SubAccept  = "accept"
)

var subcommands = map[CommandType][]string{
	CmdShift:       {SubStart, SubEnd, SubExtend, SubStatus},
	CmdLOA:         {SubRequest, SubApprove, SubDeny, SubEnd},
	CmdResignation: {SubAccept, SubDeny},
}

type Command struct {
	Type CommandType
	Sub  string
	Args []string
	Raw  string
}

// Rest joins the arguments from index i on, keeping free text such as reasons intact
func (c *Command) Rest(i int) string {
	if i >= len(c.Args) {
		return ""
	}
	return strings.Join(c.Args[i:], " ")
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "shift":
		cmd.Type = CmdShift
	case "active", "onduty":
		cmd.Type = CmdActive
	case "loa":
		cmd.Type = CmdLOA
	case "stats", "leaderboard":
		cmd.Type = CmdStats
	case "record":
		cmd.Type = CmdRecord
	case "modlog":
		cmd.Type = CmdModLog
	case "report":
		cmd.Type = CmdReport
	case "config", "setup":
		cmd.Type = CmdConfig
	case "warn":
		cmd.Type = CmdWarn
	case "warnings":
		cmd.Type = CmdWarnings
	case "unwarn", "remove_warning", "removewarning":
		cmd.Type = CmdUnwarn
	case "resign":
		cmd.Type = CmdResign
	case "resignation":
		cmd.Type = CmdResignation
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	args := parts[1:]
	if subs, ok := subcommands[cmd.Type]; ok {
		if len(args) == 0 {
			return nil, fmt.Errorf("missing subcommand for %s. Use one of: %s", cmd.Type, strings.Join(subs, ", "))
		}
		sub := strings.ToLower(args[0])
		if !contains(subs, sub) {
			return nil, fmt.Errorf("unknown %s subcommand: %s. Use one of: %s", cmd.Type, args[0], strings.Join(subs, ", "))
		}
		cmd.Sub = sub
		args = args[1:]
	}

	if len(args) > 0 {
		cmd.Args = args
	}

	return cmd, nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

var (
	userMention   = regexp.MustCompile(`^<@([UW][A-Z0-9]+)(?:\|[^>]*)?>$`)
	channelRef    = regexp.MustCompile(`^<#([CG][A-Z0-9]+)(?:\|[^>]*)?>$`)
	groupRef      = regexp.MustCompile(`^<!subteam\^(S[A-Z0-9]+)(?:\|[^>]*)?>$`)
	bareUserID    = regexp.MustCompile(`^[UW][A-Z0-9]{2,}$`)
	bareChannelID = regexp.MustCompile(`^[CG][A-Z0-9]{2,}$`)
	bareGroupID   = regexp.MustCompile(`^S[A-Z0-9]{2,}$`)
)

// ParseUserMention extracts the user ID from <@U123|name> or a bare ID
func ParseUserMention(text string) (string, bool) {
	return parseRef(text, userMention, bareUserID)
}

// ParseChannelRef extracts the channel ID from <#C123|name> or a bare ID
func ParseChannelRef(text string) (string, bool) {
	return parseRef(text, channelRef, bareChannelID)
}

// ParseGroupRef extracts the user group ID from <!subteam^S123|@name> or a bare ID
func ParseGroupRef(text string) (string, bool) {
	return parseRef(text, groupRef, bareGroupID)
}

func parseRef(text string, escaped, bare *regexp.Regexp) (string, bool) {
	text = strings.TrimSpace(text)
	if m := escaped.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if bare.MatchString(text) {
		return text, true
	}
	return "", false
}

func GetHelpText() string {
	return `*Available Commands:*

*Shifts:*
• ` + "`/staff shift start 2h`" + ` - Start a shift (m, h, d, w)
• ` + "`/staff shift extend 30m`" + ` - Add time to your current shift
• ` + "`/staff shift end`" + ` - End your shift
• ` + "`/staff shift status`" + ` - Show your current shift
• ` + "`/staff active`" + ` - List everyone on shift

*Leave of Absence:*
• ` + "`/staff loa request 1w reason`" + ` - Apply for leave (d, w, mo)
• ` + "`/staff loa approve @user 1w reason`" + ` - Approve an application (managers)
• ` + "`/staff loa deny @user`" + ` - Deny an application (managers)
• ` + "`/staff loa end`" + ` - End your leave early

*Moderation:*
• ` + "`/staff record ban|kick @user reason`" + ` - Record a moderation action
• ` + "`/staff modlog ban|kick`" + ` - Show the latest moderation actions
• ` + "`/staff report @user reason`" + ` - Report a user to the staff team
• ` + "`/staff stats [duration|messages]`" + ` - Staff leaderboard

*Warnings:*
• ` + "`/staff warn @user reason`" + ` - Warn a member (managers)
• ` + "`/staff warnings @user`" + ` - Show a member's warnings
• ` + "`/staff unwarn ID`" + ` - Remove a warning by its ID (managers)

*Resignation:*
• ` + "`/staff resign reason`" + ` - Send a resignation application to the managers
• ` + "`/staff resignation accept|deny @user`" + ` - Answer an application (managers)

*Configuration (managers):*
• ` + "`/staff config`" + ` - Show current settings
• ` + "`/staff config onduty @group`" + ` - Group granted while on shift
• ` + "`/staff config loa @group`" + ` - Group granted while on leave
• ` + "`/staff config management #channel`" + ` - Where leave applications go
• ` + "`/staff config reports #channel`" + ` - Where reports go
• ` + "`/staff config cooldown 60`" + ` - Seconds between reports per member
• ` + "`/staff config managers @group1 @group2`" + ` - Groups allowed to manage
• ` + "`/staff config allowed @group1 @group2`" + ` - Groups allowed to take shifts
Use ` + "`none`" + ` as the value to clear a setting.`
}
