package callbacks

import (
	"context"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/outpass_staff_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handler wraps callbacktypes.Handler with the entry point
type Handler struct {
	*callbacktypes.Handler
}

type StateManager = callbacktypes.StateManager

func NewHandler(
	sessions *service.SessionService,
	outpasses *service.OutpassService,
	students *service.StudentService,
	staff *service.StaffService,
	stateManager StateManager,
	logger *zap.Logger,
) *Handler {
	return &Handler{Handler: &callbacktypes.Handler{
		Sessions:     sessions,
		Outpasses:    outpasses,
		Students:     students,
		Staff:        staff,
		StateManager: stateManager,
		Logger:       logger,
	}}
}

// HandleCallbackQuery is the entry point for inline button presses
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery
	h.Logger.Debug("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("telegram_id", callback.From.ID))

	Route(ctx, b, callback, h.Handler)
}
