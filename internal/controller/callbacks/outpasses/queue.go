package outpasses

import (
	"context"
	"strings"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/state"
	"github.com/Freeeeeet/outpass_staff_bot/internal/outpass"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleList refetches the queue and shows its first page
func HandleList(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		if _, err := h.Outpasses.Refresh(hc.Ctx, hc.Session); err != nil {
			common.HandleError(hc, err, "list outpasses")
			return
		}
		showPage(hc, 0, "🔄 Updated")
	})
}

// HandlePage pages through the already fetched queue
func HandlePage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		page, err := common.CallbackPage(callback.Data, common.CbOutpassPage)
		if err != nil {
			common.HandleError(hc, err, "outpass page")
			return
		}
		h.Outpasses.Board(hc.TelegramID).Close()
		showPage(hc, page, "")
	})
}

func HandleFilter(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		raw := strings.TrimPrefix(callback.Data, common.CbOutpassFilter)
		h.Outpasses.Board(hc.TelegramID).SetStatusFilter(outpass.ParseStatusFilter(raw))
		showPage(hc, 0, "")
	})
}

// HandleSearch asks for a name or register number
func HandleSearch(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.StartDialog(state.StateOutpassSearch, nil)
		if err := hc.SendMessage("🔍 Send a student name or register number:", common.DialogKeyboard()); err != nil {
			common.HandleError(hc, err, "outpass search prompt")
			return
		}
		hc.Answer("")
	})
}

func HandleClearSearch(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		h.Outpasses.Board(hc.TelegramID).SetQuery("")
		showPage(hc, 0, "Search cleared")
	})
}

func showPage(hc *common.HandlerContext, page int, notice string) {
	text, kb := common.BuildQueueScreen(hc.Handler.Outpasses.Board(hc.TelegramID), page)
	if err := hc.EditMessage(text, kb); err != nil {
		common.HandleError(hc, err, "show outpass queue")
		return
	}
	hc.Answer(notice)
}
