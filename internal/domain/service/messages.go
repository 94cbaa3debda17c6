package service

import (
	"fmt"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
)

func shiftReminderMessage(shift *entity.Shift, window string) string {
	return fmt.Sprintf("⏰ Your shift will end in approximately *%s* (%s).\n\nWrap up your tasks or use `/staff shift extend <duration>` to add more time.",
		window, domain.FormatTimestamp(shift.EndTime))
}

func shiftExpiredMessage(closed *entity.ClosedShift) string {
	return fmt.Sprintf("🔴 Your shift has automatically ended after *%s*.\n\nYou have been logged out and your on-duty group has been removed.",
		domain.FormatDuration(closed.Elapsed))
}

func loaExpiredMessage() string {
	return "📅 Your leave of absence has ended.\n\nYou are now ready to take shifts again. Use `/staff shift start <duration>` to log in when ready!"
}

func loaApprovedMessage(loa *entity.LOA) string {
	return fmt.Sprintf("✅ Your leave of absence has been *accepted* until %s.\n\n⚠️ You cannot start shifts while on leave. Use `/staff loa end` to end your leave early if needed.",
		domain.FormatTimestamp(loa.EndTime))
}

func loaApplicationMessage(req *entity.LOARequest) string {
	return fmt.Sprintf("📅 *Leave of Absence Application*\n\n*Staff member:* <@%s>\n*Duration:* %s\n*Ends:* %s\n\n*Reason:*\n%s\n\nApprove with `/staff loa approve <@%s> %s %s` or deny with `/staff loa deny <@%s>`",
		req.UserID, req.Label, domain.FormatTimestamp(req.EndTime), req.Reason,
		req.UserID, req.Label, req.Reason, req.UserID)
}

func reportMessage(reporterID, targetID, reason string) string {
	return fmt.Sprintf("🚨 *New User Report*\n\n*Reported user:* <@%s>\n*Reporter:* <@%s>\n*Reason:* %s\n\nRecord an outcome with `/staff record ban|kick <@%s> <reason>`",
		targetID, reporterID, reason, targetID)
}

func warningMessage(w *entity.Warning) string {
	return fmt.Sprintf("⚠️ You have been warned by <@%s> for: %s\n*Warning ID:* `%s`", w.ModeratorID, w.Reason, w.ID)
}

func resignationApplicationMessage(userID, reason string) string {
	return fmt.Sprintf("📄 *Resignation Application*\n\n*Staff member:* <@%s>\n\n*Reason:*\n%s\n\nAccept with `/staff resignation accept <@%s>` or deny with `/staff resignation deny <@%s>`",
		userID, reason, userID, userID)
}

func resignationDecisionMessage(managerID string, decision entity.ResignationDecision) string {
	if decision == entity.ResignationAccepted {
		return fmt.Sprintf("✅ Your resignation application has been *accepted* by <@%s>.", managerID)
	}
	return fmt.Sprintf("❌ Your resignation application has been *denied* by <@%s>.", managerID)
}
