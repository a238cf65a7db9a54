package callbacktypes

import (
	"github.com/Freeeeeet/outpass_staff_bot/internal/service"
	"go.uber.org/zap"
)

// UserState is the dialog step of a chat as seen by callback handlers
type UserState string

// StateManager keeps per-chat dialog state
type StateManager interface {
	ClearState(telegramID int64)
	GetState(telegramID int64) UserState
	SetState(telegramID int64, state UserState)
	SetData(telegramID int64, key string, value interface{})
	GetData(telegramID int64, key string) (interface{}, bool)
	GetAllData(telegramID int64) map[string]interface{}
}

// Handler holds the dependencies shared by all callback handlers
type Handler struct {
	Sessions     *service.SessionService
	Outpasses    *service.OutpassService
	Students     *service.StudentService
	Staff        *service.StaffService
	StateManager StateManager
	Logger       *zap.Logger
}
