package outpasses

import (
	"context"
	"fmt"
	"html"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/state"
	"github.com/Freeeeeet/outpass_staff_bot/internal/outpass"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleView opens a request with its roommates
func HandleView(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		args, err := common.CallbackArgs(callback.Data, common.CbOutpassView, 1)
		if err != nil {
			common.HandleError(hc, err, "view outpass")
			return
		}

		detail, err := h.Outpasses.Open(hc.Ctx, hc.Session, args[0])
		if err != nil {
			common.HandleError(hc, err, "view outpass")
			return
		}

		text, kb := common.BuildOutpassDetailScreen(detail)
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "view outpass")
			return
		}
		hc.Answer("")
	})
}

// HandleImage sends the approval workflow of a request as a picture
func HandleImage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		args, err := common.CallbackArgs(callback.Data, common.CbOutpassImage, 1)
		if err != nil {
			common.HandleError(hc, err, "workflow image")
			return
		}
		id := args[0]

		r, ok := h.Outpasses.Board(hc.TelegramID).Find(id)
		if !ok {
			detail, err := h.Outpasses.Open(hc.Ctx, hc.Session, id)
			if err != nil {
				common.HandleError(hc, err, "workflow image")
				return
			}
			r = detail.Outpass
		}

		img, err := common.GenerateWorkflowImage(r)
		if err != nil {
			common.HandleError(hc, err, "workflow image")
			return
		}

		caption := fmt.Sprintf("🖼 Approval workflow of <b>%s</b>", html.EscapeString(r.Name))
		if err := hc.SendPhoto(fmt.Sprintf("outpass_%s.png", id), img, caption); err != nil {
			common.HandleError(hc, err, "workflow image")
			return
		}
		hc.Answer("")
	})
}

// HandleDecide starts the remarks dialog for an approve or reject press.
// The request is checked first so a decided stage never asks for remarks.
func HandleDecide(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		args, err := common.CallbackArgs(callback.Data, common.CbOutpassDecide, 2)
		if err != nil {
			common.HandleError(hc, err, "decide outpass")
			return
		}
		action, id := outpass.Action(args[0]), args[1]

		r, ok := h.Outpasses.Board(hc.TelegramID).Find(id)
		if !ok {
			common.HandleError(hc, outpass.ErrRequestNotLoaded, "decide outpass")
			return
		}
		if _, err := action.Status(); err != nil {
			common.HandleError(hc, err, "decide outpass")
			return
		}
		if !r.IsStaffPending() {
			common.HandleError(hc, outpass.ErrStageNotPending, "decide outpass")
			return
		}

		hc.StartDialog(state.StateDecisionRemarks, map[string]interface{}{
			state.KeyOutpassID: id,
			state.KeyAction:    string(action),
		})

		verb := "approving"
		if action == outpass.ActionReject {
			verb = "rejecting"
		}
		prompt := fmt.Sprintf("✍️ Remarks for %s the request of <b>%s</b>:", verb, html.EscapeString(r.Name))
		if err := hc.SendMessage(prompt, common.DialogKeyboard()); err != nil {
			common.HandleError(hc, err, "decide outpass")
			return
		}

		h.Logger.Debug("Decision dialog started",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.String("outpass_id", id),
			zap.String("action", string(action)))
		hc.Answer("")
	})
}
