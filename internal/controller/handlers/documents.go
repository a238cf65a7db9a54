package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleDocument accepts a roster spreadsheet while an upload is awaited
func (h *Handlers) handleDocument(ctx context.Context, b *bot.Bot, update *models.Update, current state.UserState) {
	msg := update.Message
	if current != state.StateRosterUpload {
		h.sendMessage(ctx, b, msg.Chat.ID, "ℹ️ To import students, press 📥 Upload roster in /students first.", nil)
		return
	}

	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}

	doc := msg.Document
	h.logger.Info("Roster file received",
		zap.Int64("telegram_id", sess.TelegramID),
		zap.String("filename", doc.FileName),
		zap.Int64("size", doc.FileSize))

	file, err := b.GetFile(ctx, &bot.GetFileParams{FileID: doc.FileID})
	if err != nil {
		h.handleError(ctx, b, msg, err, "get roster file")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.FileDownloadLink(file), nil)
	if err != nil {
		h.handleError(ctx, b, msg, err, "download roster file")
		return
	}
	resp, err := h.files.Do(req)
	if err != nil {
		h.handleError(ctx, b, msg, err, "download roster file")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		h.handleError(ctx, b, msg, fmt.Errorf("download roster file: status %d", resp.StatusCode), "download roster file")
		return
	}

	res, err := h.students.UploadRoster(ctx, sess, doc.FileName, resp.Body)
	if err != nil {
		h.handleError(ctx, b, msg, err, "upload roster")
		return
	}
	h.stateManager.ClearState(sess.TelegramID)

	h.sendMessage(ctx, b, msg.Chat.ID, formatting.FormatRosterUpload(res), nil)

	if _, err := h.students.Refresh(ctx, sess); err != nil {
		h.handleError(ctx, b, msg, err, "list students")
		return
	}
	h.sendStudents(ctx, b, msg.Chat.ID, sess.TelegramID)
}
