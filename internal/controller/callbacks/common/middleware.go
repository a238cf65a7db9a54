package common

import (
	"context"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/callbacktypes"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// WithSession builds a HandlerContext with the staff session loaded.
// Without a session the staff member is told to log in and handler is not called.
func WithSession(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	handler func(*HandlerContext),
) {
	hc := NewHandlerContext(ctx, b, callback, h)

	if err := hc.LoadSession(); err != nil {
		h.Logger.Info("Callback without session",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
		hc.AnswerAlert(ErrorMessage(err))
		return
	}

	handler(hc)
}

// HandleError logs a failed operation and tells the staff member.
// An auth failure from the backend also ends the session.
func HandleError(hc *HandlerContext, err error, operation string) {
	if hc.Handler.Sessions.Invalidate(hc.Ctx, hc.TelegramID, err) {
		hc.Handler.Logger.Info("Session rejected by backend",
			zap.String("operation", operation),
			zap.Int64("telegram_id", hc.TelegramID))
		hc.AnswerAlert(SessionExpiredText)
		return
	}

	hc.Handler.Logger.Error("Operation failed",
		zap.String("operation", operation),
		zap.Int64("telegram_id", hc.TelegramID),
		zap.Error(err))
	hc.AnswerAlert(ErrorMessage(err))
}
