package formatting

import (
	"time"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
)

func FormatDateTime(t time.Time) string {
	return t.Format("02 Jan 2006 15:04")
}

func FormatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

// FormatBackendDate formats a date string from the backend.
// Values that do not parse are shown as they are.
func FormatBackendDate(raw string) string {
	t, ok := model.ParseDate(raw)
	if !ok {
		if raw == "" {
			return "—"
		}
		return raw
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return FormatDate(t)
	}
	return FormatDateTime(t)
}
