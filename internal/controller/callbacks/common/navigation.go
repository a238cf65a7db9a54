package common

import (
	"go.uber.org/zap"
)

// ShowDashboard refreshes the queue and shows the dashboard in place
func ShowDashboard(hc *HandlerContext) {
	hc.ClearState()

	if _, err := hc.Handler.Outpasses.Refresh(hc.Ctx, hc.Session); err != nil {
		HandleError(hc, err, "dashboard")
		return
	}
	counts := hc.Handler.Outpasses.Board(hc.TelegramID).Counts()

	text, kb := BuildDashboardScreen(hc.Session.StaffName, counts)
	if err := hc.EditMessage(text, kb); err != nil {
		HandleError(hc, err, "dashboard")
		return
	}
	hc.Answer("")
}

// HandleCancelDialog abandons the current dialog
func HandleCancelDialog(hc *HandlerContext) {
	hc.ClearState()
	if err := hc.EditMessage("✖️ Cancelled.", nil); err != nil {
		hc.Handler.Logger.Warn("Failed to edit cancelled prompt",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
	}
	hc.Answer("Cancelled")
}

// HandleLogout ends the session from the dashboard button
func HandleLogout(hc *HandlerContext) {
	if err := hc.Handler.Sessions.Logout(hc.Ctx, hc.TelegramID); err != nil {
		HandleError(hc, err, "logout")
		return
	}
	if err := hc.EditMessage("👋 You are logged out. Use /login to sign in again.", nil); err != nil {
		hc.Handler.Logger.Warn("Failed to edit logout message", zap.Error(err))
	}
	hc.Answer("Logged out")
}
