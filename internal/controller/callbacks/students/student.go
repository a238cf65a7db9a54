package students

import (
	"context"
	"fmt"
	"html"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/state"
	"github.com/Freeeeeet/outpass_staff_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func HandleView(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		args, err := common.CallbackArgs(callback.Data, common.CbStudentView, 1)
		if err != nil {
			common.HandleError(hc, err, "view student")
			return
		}
		hc.ClearState()
		showStudent(hc, args[0], "")
	})
}

func HandleEdit(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		args, err := common.CallbackArgs(callback.Data, common.CbStudentEdit, 1)
		if err != nil {
			common.HandleError(hc, err, "edit student")
			return
		}

		st, err := h.Students.Find(hc.TelegramID, args[0])
		if err != nil {
			common.HandleError(hc, err, "edit student")
			return
		}

		text, kb := common.BuildStudentEditScreen(st)
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "edit student")
			return
		}
		hc.Answer("")
	})
}

// HandleField asks for the new value of one student field
func HandleField(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		args, err := common.CallbackArgs(callback.Data, common.CbStudentField, 2)
		if err != nil {
			common.HandleError(hc, err, "edit student field")
			return
		}
		id, field := args[0], args[1]

		if _, ok := service.StudentFields[field]; !ok {
			common.HandleError(hc, service.ErrUnknownField, "edit student field")
			return
		}
		st, err := h.Students.Find(hc.TelegramID, id)
		if err != nil {
			common.HandleError(hc, err, "edit student field")
			return
		}

		hc.StartDialog(state.StateStudentEdit, map[string]interface{}{
			state.KeyStudentID: id,
			state.KeyField:     field,
		})

		prompt := fmt.Sprintf("✏️ New %s for <b>%s</b>:", formatting.FieldTitle(field), html.EscapeString(st.Name))
		if err := hc.SendMessage(prompt, common.DialogKeyboard()); err != nil {
			common.HandleError(hc, err, "edit student field")
			return
		}
		hc.Answer("")
	})
}

func HandleBlock(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		args, err := common.CallbackArgs(callback.Data, common.CbStudentBlock, 2)
		if err != nil {
			common.HandleError(hc, err, "block student")
			return
		}
		id, blocked := args[0], args[1] == "1"

		if err := h.Students.SetBlocked(hc.Ctx, hc.Session, id, blocked); err != nil {
			common.HandleError(hc, err, "block student")
			return
		}

		notice := "✅ Unblocked"
		if blocked {
			notice = "🚫 Blocked"
		}
		showStudent(hc, id, notice)
	})
}

func HandleDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		args, err := common.CallbackArgs(callback.Data, common.CbStudentDelete, 1)
		if err != nil {
			common.HandleError(hc, err, "delete student")
			return
		}

		st, err := h.Students.Find(hc.TelegramID, args[0])
		if err != nil {
			common.HandleError(hc, err, "delete student")
			return
		}

		text, kb := common.BuildStudentDeleteScreen(st)
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "delete student")
			return
		}
		hc.Answer("")
	})
}

func HandleConfirmDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		args, err := common.CallbackArgs(callback.Data, common.CbStudentConfirmDelete, 1)
		if err != nil {
			common.HandleError(hc, err, "delete student")
			return
		}

		if err := h.Students.Delete(hc.Ctx, hc.Session, args[0]); err != nil {
			common.HandleError(hc, err, "delete student")
			return
		}
		showPage(hc, 0, "🗑 Deleted")
	})
}

// HandlePassword starts the two-step password change dialog
func HandlePassword(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		args, err := common.CallbackArgs(callback.Data, common.CbStudentPassword, 1)
		if err != nil {
			common.HandleError(hc, err, "student password")
			return
		}

		st, err := h.Students.Find(hc.TelegramID, args[0])
		if err != nil {
			common.HandleError(hc, err, "student password")
			return
		}

		hc.StartDialog(state.StateStudentPassword, map[string]interface{}{
			state.KeyStudentID: st.ID,
		})

		prompt := fmt.Sprintf("🔑 New password for <b>%s</b> (at least 6 characters):", html.EscapeString(st.Name))
		if err := hc.SendMessage(prompt, common.DialogKeyboard()); err != nil {
			common.HandleError(hc, err, "student password")
			return
		}
		hc.Answer("")
	})
}

func showStudent(hc *common.HandlerContext, id, notice string) {
	st, err := hc.Handler.Students.Find(hc.TelegramID, id)
	if err != nil {
		common.HandleError(hc, err, "show student")
		return
	}

	text, kb := common.BuildStudentScreen(st)
	if err := hc.EditMessage(text, kb); err != nil {
		common.HandleError(hc, err, "show student")
		return
	}
	hc.Answer(notice)
}
