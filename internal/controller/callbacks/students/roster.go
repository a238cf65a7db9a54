package students

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/state"
	"github.com/Freeeeeet/outpass_staff_bot/internal/roster"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleList refetches the roster and shows its first page
func HandleList(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		if _, err := h.Students.Refresh(hc.Ctx, hc.Session); err != nil {
			common.HandleError(hc, err, "list students")
			return
		}
		showPage(hc, 0, "🔄 Updated")
	})
}

func HandlePage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		page, err := common.CallbackPage(callback.Data, common.CbStudentPage)
		if err != nil {
			common.HandleError(hc, err, "students page")
			return
		}
		showPage(hc, page, "")
	})
}

func HandleSearch(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.StartDialog(state.StateStudentSearch, nil)
		if err := hc.SendMessage("🔍 Send a student name or register number:", common.DialogKeyboard()); err != nil {
			common.HandleError(hc, err, "student search prompt")
			return
		}
		hc.Answer("")
	})
}

func HandleClearSearch(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		h.Students.SetQuery(hc.TelegramID, "")
		showPage(hc, 0, "Search cleared")
	})
}

// HandleNew starts the single student signup dialog
func HandleNew(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.StartDialog(state.StateStudentSignup, map[string]interface{}{
			state.KeySignup:     map[string]string{},
			state.KeySignupStep: 0,
		})
		if err := hc.SendMessage(SignupPrompt(0, nil), common.DialogKeyboard()); err != nil {
			common.HandleError(hc, err, "student signup prompt")
			return
		}
		hc.Answer("")
	})
}

// HandleUpload waits for a roster spreadsheet from the chat
func HandleUpload(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.StartDialog(state.StateRosterUpload, nil)
		text := "📥 Send the roster as an .xlsx or .xls file.\n\n" +
			"Use 📄 Template for the expected columns."
		if err := hc.SendMessage(text, common.DialogKeyboard()); err != nil {
			common.HandleError(hc, err, "roster upload prompt")
			return
		}
		hc.Answer("")
	})
}

func HandleTemplate(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		data, err := roster.Template()
		if err != nil {
			common.HandleError(hc, err, "roster template")
			return
		}
		if err := hc.SendDocument("students_template.xlsx", data, "📄 Fill one row per student and upload it back."); err != nil {
			common.HandleError(hc, err, "roster template")
			return
		}
		hc.Answer("")
	})
}

// HandleExport sends the cached roster, narrowed by the current search
func HandleExport(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		list := h.Students.List(hc.TelegramID, h.Students.Query(hc.TelegramID))
		if len(list) == 0 {
			hc.AnswerAlert("ℹ️ No students to export")
			return
		}

		data, err := roster.Export(list)
		if err != nil {
			common.HandleError(hc, err, "roster export")
			return
		}

		filename := fmt.Sprintf("students_%s.xlsx", time.Now().Format("2006-01-02"))
		if err := hc.SendDocument(filename, data, fmt.Sprintf("📤 %d students", len(list))); err != nil {
			common.HandleError(hc, err, "roster export")
			return
		}
		hc.Answer("")
	})
}

func showPage(hc *common.HandlerContext, page int, notice string) {
	query := hc.Handler.Students.Query(hc.TelegramID)
	text, kb := common.BuildStudentsScreen(hc.Handler.Students.List(hc.TelegramID, query), query, page)
	if err := hc.EditMessage(text, kb); err != nil {
		common.HandleError(hc, err, "show students")
		return
	}
	hc.Answer(notice)
}
