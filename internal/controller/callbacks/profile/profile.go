package profile

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/state"
	"github.com/Freeeeeet/outpass_staff_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleView shows the staff member's own profile
func HandleView(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()

		p, err := h.Staff.Profile(hc.Ctx, hc.Session)
		if err != nil {
			common.HandleError(hc, err, "view profile")
			return
		}

		text, kb := common.BuildProfileScreen(p)
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "view profile")
			return
		}
		hc.Answer("")
	})
}

func HandleEdit(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		field := strings.TrimPrefix(callback.Data, common.CbProfileEdit)
		if !slices.Contains(service.ProfileFields, field) {
			common.HandleError(hc, service.ErrUnknownField, "edit profile")
			return
		}

		hc.StartDialog(state.StateProfileEdit, map[string]interface{}{
			state.KeyField: field,
		})

		prompt := fmt.Sprintf("✏️ Send your new %s:", strings.ToLower(formatting.FieldTitle(field)))
		if err := hc.SendMessage(prompt, common.DialogKeyboard()); err != nil {
			common.HandleError(hc, err, "edit profile")
			return
		}
		hc.Answer("")
	})
}
