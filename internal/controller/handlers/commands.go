package handlers

import (
	"context"
	"fmt"
	"html"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const helpText = "📚 <b>Staff portal commands</b>\n\n" +
	"/login - Sign in with your portal account\n" +
	"/dashboard - Pending requests at a glance\n" +
	"/outpasses - Review outpass requests\n" +
	"/students - Manage the student roster\n" +
	"/profile - Your staff profile\n" +
	"/cancel - Abandon the current step\n" +
	"/logout - Sign out\n\n" +
	"Open a request from /outpasses to approve or reject it. Remarks are required for both."

// HandleStart greets the sender and shows the dashboard when logged in
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	sess, err := h.sessions.Require(ctx, update.Message.From.ID)
	if err != nil {
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			fmt.Sprintf("👋 Hello, %s!\n\nThis bot is the staff side of the college outpass portal.\n"+
				"Use /login to sign in with your portal email and password.",
				html.EscapeString(update.Message.From.FirstName)), nil)
		return
	}

	h.logger.Debug("Start with live session", zap.Int64("telegram_id", sess.TelegramID))
	h.HandleDashboard(ctx, b, update)
}

func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText, nil)
}

// HandleLogin starts the email and password dialog
func (h *Handlers) HandleLogin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	h.stateManager.ClearState(telegramID)
	h.stateManager.SetState(telegramID, state.StateLoginEmail)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"🔐 <b>Staff login</b>\n\nSend your portal email:", common.DialogKeyboard())
}

func (h *Handlers) HandleLogout(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	if err := h.sessions.Logout(ctx, update.Message.From.ID); err != nil {
		h.handleError(ctx, b, update.Message, err, "logout")
		return
	}
	h.sendMessage(ctx, b, update.Message.Chat.ID, "👋 You are logged out. Use /login to sign in again.", nil)
}

// HandleDashboard refreshes the queue and sends the dashboard
func (h *Handlers) HandleDashboard(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}
	h.stateManager.ClearState(sess.TelegramID)

	if _, err := h.outpasses.Refresh(ctx, sess); err != nil {
		h.handleError(ctx, b, update.Message, err, "dashboard")
		return
	}

	text, kb := common.BuildDashboardScreen(sess.StaffName, h.outpasses.Board(sess.TelegramID).Counts())
	h.sendMessage(ctx, b, update.Message.Chat.ID, text, kb)
}

func (h *Handlers) HandleOutpasses(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}
	h.stateManager.ClearState(sess.TelegramID)

	if _, err := h.outpasses.Refresh(ctx, sess); err != nil {
		h.handleError(ctx, b, update.Message, err, "list outpasses")
		return
	}
	h.sendQueue(ctx, b, update.Message.Chat.ID, sess.TelegramID)
}

func (h *Handlers) HandleStudents(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}
	h.stateManager.ClearState(sess.TelegramID)

	if _, err := h.students.Refresh(ctx, sess); err != nil {
		h.handleError(ctx, b, update.Message, err, "list students")
		return
	}
	h.sendStudents(ctx, b, update.Message.Chat.ID, sess.TelegramID)
}

func (h *Handlers) HandleProfile(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}
	h.stateManager.ClearState(sess.TelegramID)

	p, err := h.staff.Profile(ctx, sess)
	if err != nil {
		h.handleError(ctx, b, update.Message, err, "view profile")
		return
	}

	text, kb := common.BuildProfileScreen(p)
	h.sendMessage(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleCancel abandons the current dialog
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	if h.stateManager.GetState(telegramID) == state.StateNone {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "ℹ️ Nothing to cancel.", nil)
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendMessage(ctx, b, update.Message.Chat.ID, "✖️ Cancelled.\n\nUse /help to see the commands.", nil)
}

func (h *Handlers) sendQueue(ctx context.Context, b *bot.Bot, chatID, telegramID int64) {
	text, kb := common.BuildQueueScreen(h.outpasses.Board(telegramID), 0)
	h.sendMessage(ctx, b, chatID, text, kb)
}

func (h *Handlers) sendStudents(ctx context.Context, b *bot.Bot, chatID, telegramID int64) {
	query := h.students.Query(telegramID)
	text, kb := common.BuildStudentsScreen(h.students.List(telegramID, query), query, 0)
	h.sendMessage(ctx, b, chatID, text, kb)
}
