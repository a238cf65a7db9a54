package handlers

import (
	"context"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// requireSession returns the live staff session of the sender.
// Without one the sender is told to log in.
func (h *Handlers) requireSession(ctx context.Context, b *bot.Bot, update *models.Update) (*model.Session, bool) {
	if update.Message == nil || update.Message.From == nil {
		return nil, false
	}

	sess, err := h.sessions.Require(ctx, update.Message.From.ID)
	if err != nil {
		h.logger.Info("Message without session",
			zap.Int64("telegram_id", update.Message.From.ID),
			zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return nil, false
	}

	return sess, true
}

// handleError logs a failed operation and tells the sender. An auth
// failure from the backend also ends the session.
func (h *Handlers) handleError(ctx context.Context, b *bot.Bot, msg *models.Message, err error, operation string) {
	telegramID := msg.From.ID

	if h.sessions.Invalidate(ctx, telegramID, err) {
		h.logger.Info("Session rejected by backend",
			zap.String("operation", operation),
			zap.Int64("telegram_id", telegramID))
		h.sendError(ctx, b, msg.Chat.ID, common.SessionExpiredText)
		return
	}

	h.logger.Error("Operation failed",
		zap.String("operation", operation),
		zap.Int64("telegram_id", telegramID),
		zap.Error(err))
	h.sendError(ctx, b, msg.Chat.ID, common.ErrorMessage(err))
}
