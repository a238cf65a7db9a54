package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/outpasses"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/profile"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/students"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Route dispatches a callback query by its data prefix
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	switch {
	// ===== Navigation =====
	case data == common.CbNoop:
		common.AnswerCallback(ctx, b, callback.ID, "")
	case data == common.CbMenu:
		common.WithSession(ctx, b, callback, h, common.ShowDashboard)
	case data == common.CbCancel:
		common.HandleCancelDialog(common.NewHandlerContext(ctx, b, callback, h))
	case data == common.CbLogout:
		common.HandleLogout(common.NewHandlerContext(ctx, b, callback, h))

	// ===== Outpass queue =====
	case data == common.CbOutpasses:
		outpasses.HandleList(ctx, b, callback, h)
	case strings.HasPrefix(data, common.CbOutpassPage):
		outpasses.HandlePage(ctx, b, callback, h)
	case strings.HasPrefix(data, common.CbOutpassFilter):
		outpasses.HandleFilter(ctx, b, callback, h)
	case data == common.CbOutpassSearch:
		outpasses.HandleSearch(ctx, b, callback, h)
	case data == common.CbOutpassClearSearch:
		outpasses.HandleClearSearch(ctx, b, callback, h)
	case strings.HasPrefix(data, common.CbOutpassView):
		outpasses.HandleView(ctx, b, callback, h)
	case strings.HasPrefix(data, common.CbOutpassImage):
		outpasses.HandleImage(ctx, b, callback, h)
	case strings.HasPrefix(data, common.CbOutpassDecide):
		outpasses.HandleDecide(ctx, b, callback, h)

	// ===== Students =====
	case data == common.CbStudents:
		students.HandleList(ctx, b, callback, h)
	case strings.HasPrefix(data, common.CbStudentPage):
		students.HandlePage(ctx, b, callback, h)
	case data == common.CbStudentSearch:
		students.HandleSearch(ctx, b, callback, h)
	case data == common.CbStudentClearSearch:
		students.HandleClearSearch(ctx, b, callback, h)
	case strings.HasPrefix(data, common.CbStudentView):
		students.HandleView(ctx, b, callback, h)
	case strings.HasPrefix(data, common.CbStudentEdit):
		students.HandleEdit(ctx, b, callback, h)
	case strings.HasPrefix(data, common.CbStudentField):
		students.HandleField(ctx, b, callback, h)
	case strings.HasPrefix(data, common.CbStudentBlock):
		students.HandleBlock(ctx, b, callback, h)
	case strings.HasPrefix(data, common.CbStudentDelete):
		students.HandleDelete(ctx, b, callback, h)
	case strings.HasPrefix(data, common.CbStudentConfirmDelete):
		students.HandleConfirmDelete(ctx, b, callback, h)
	case strings.HasPrefix(data, common.CbStudentPassword):
		students.HandlePassword(ctx, b, callback, h)
	case data == common.CbStudentNew:
		students.HandleNew(ctx, b, callback, h)
	case data == common.CbStudentUpload:
		students.HandleUpload(ctx, b, callback, h)
	case data == common.CbStudentTemplate:
		students.HandleTemplate(ctx, b, callback, h)
	case data == common.CbStudentExport:
		students.HandleExport(ctx, b, callback, h)

	// ===== Profile =====
	case data == common.CbProfile:
		profile.HandleView(ctx, b, callback, h)
	case strings.HasPrefix(data, common.CbProfileEdit):
		profile.HandleEdit(ctx, b, callback, h)

	default:
		h.Logger.Warn("Unknown callback",
			zap.String("data", data),
			zap.Int64("telegram_id", callback.From.ID))
		common.AnswerCallback(ctx, b, callback.ID, "❌ Unknown command")
	}
}
