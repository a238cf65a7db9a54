package handlers

import (
	"net/http"
	"time"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/state"
	"github.com/Freeeeeet/outpass_staff_bot/internal/service"
	"go.uber.org/zap"
)

const fileDownloadTimeout = 30 * time.Second

// Handlers serves slash commands and dialog replies
type Handlers struct {
	sessions     *service.SessionService
	outpasses    *service.OutpassService
	students     *service.StudentService
	staff        *service.StaffService
	stateManager *state.Manager
	files        *http.Client
	logger       *zap.Logger
}

func NewHandlers(
	sessions *service.SessionService,
	outpasses *service.OutpassService,
	students *service.StudentService,
	staff *service.StaffService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		sessions:     sessions,
		outpasses:    outpasses,
		students:     students,
		staff:        staff,
		stateManager: stateManager,
		files:        &http.Client{Timeout: fileDownloadTimeout},
		logger:       logger,
	}
}
