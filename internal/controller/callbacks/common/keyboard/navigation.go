package keyboard

import (
	"github.com/go-telegram/bot/models"
)

// Callback data shared by several screens
const (
	Noop     = "noop"
	MainMenu = "menu"
)

func BackButton(callbackData string) models.InlineKeyboardButton {
	return Button("⬅️ Back", callbackData)
}

func MainMenuButton() models.InlineKeyboardButton {
	return Button("🏠 Dashboard", MainMenu)
}

func CancelButton(callbackData string) models.InlineKeyboardButton {
	return Button("❌ Cancel", callbackData)
}

func ConfirmButton(callbackData string) models.InlineKeyboardButton {
	return Button("✅ Confirm", callbackData)
}

// ConfirmCancelButtons returns a single Confirm/Cancel row
func ConfirmCancelButtons(confirmCallback, cancelCallback string) [][]models.InlineKeyboardButton {
	return [][]models.InlineKeyboardButton{
		{
			ConfirmButton(confirmCallback),
			CancelButton(cancelCallback),
		},
	}
}

func (b *Builder) AddBackButton(callbackData string) *Builder {
	return b.Row(BackButton(callbackData))
}

func (b *Builder) AddMainMenuButton() *Builder {
	return b.Row(MainMenuButton())
}
