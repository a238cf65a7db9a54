package common

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// AnswerCallback answers a callback query with a toast
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert answers a callback query with a popup
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// CallbackArgs splits the arguments after the prefix.
// "st_field:abc:name" with prefix "st_field:" -> ["abc", "name"]
func CallbackArgs(data, prefix string, n int) ([]string, error) {
	if !strings.HasPrefix(data, prefix) {
		return nil, ErrInvalidFormat
	}
	args := strings.SplitN(strings.TrimPrefix(data, prefix), ":", n)
	if len(args) != n {
		return nil, ErrInvalidFormat
	}
	for _, a := range args {
		if a == "" {
			return nil, ErrInvalidFormat
		}
	}
	return args, nil
}

// CallbackPage parses the page number of a pagination callback
func CallbackPage(data, prefix string) (int, error) {
	args, err := CallbackArgs(data, prefix, 1)
	if err != nil {
		return 0, err
	}
	page, err := strconv.Atoi(args[0])
	if err != nil || page < 0 {
		return 0, ErrInvalidFormat
	}
	return page, nil
}

// IsMessageNotModifiedError reports the Telegram error returned when an edit changes nothing
func IsMessageNotModifiedError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
