package common

import (
	"errors"
	"fmt"

	"github.com/Freeeeeet/outpass_staff_bot/internal/api"
	"github.com/Freeeeeet/outpass_staff_bot/internal/outpass"
	"github.com/Freeeeeet/outpass_staff_bot/internal/service"
)

var (
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
)

const SessionExpiredText = "🔒 Your session has ended. Use /login to sign in again."

// ErrorMessage returns the text shown to the staff member for err
func ErrorMessage(err error) string {
	var (
		status  *api.StatusError
		invalid *service.InvalidInputError
	)
	validation, isValidation := api.IsValidation(err)

	switch {
	case errors.Is(err, service.ErrNoSession):
		return "🔒 You are not logged in. Use /login"
	case errors.Is(err, api.ErrUnauthorized):
		return SessionExpiredText
	case errors.Is(err, api.ErrTransport):
		return "📡 The portal server is unreachable. Try again later."
	case errors.Is(err, api.ErrNotFound):
		return "❌ Record not found"
	case isValidation:
		return "⚠️ " + validation.Message
	case errors.As(err, &invalid):
		return fmt.Sprintf("⚠️ Invalid %s: %s", invalid.Field, invalid.Reason)
	case errors.Is(err, outpass.ErrStageNotPending):
		return "ℹ️ This request has already been decided"
	case errors.Is(err, outpass.ErrRemarksRequired):
		return "✍️ Remarks are required"
	case errors.Is(err, outpass.ErrUnknownAction):
		return "❌ Unknown action"
	case errors.Is(err, outpass.ErrRequestNotLoaded):
		return "❌ Request is not loaded. Open /outpasses again"
	case errors.Is(err, service.ErrUnsupportedRoster):
		return "📎 Please send an .xlsx or .xls spreadsheet"
	case errors.Is(err, service.ErrUnknownField):
		return "❌ This field cannot be edited"
	case errors.Is(err, service.ErrStudentNotLoaded):
		return "❌ Student is not loaded. Open /students again"
	case errors.Is(err, ErrNoMessage):
		return "❌ Message processing failed"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Invalid data format"
	case errors.As(err, &status):
		return fmt.Sprintf("❌ Portal server error (%d)", status.Status)
	default:
		return "❌ Something went wrong"
	}
}
