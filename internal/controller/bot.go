package controller

import (
	"context"
	"strings"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/handlers"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/state"
	"github.com/Freeeeeet/outpass_staff_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	sessions *service.SessionService,
	outpasses *service.OutpassService,
	students *service.StudentService,
	staff *service.StaffService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *BotController {
	cmdHandlers := handlers.NewHandlers(
		sessions,
		outpasses,
		students,
		staff,
		stateManager,
		logger,
	)

	callbackHandler := callbacks.NewHandler(
		sessions,
		outpasses,
		students,
		staff,
		state.NewAdapter(stateManager),
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers registers commands, dialog replies and inline buttons
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/login", bot.MatchTypeExact, c.handlers.HandleLogin)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/logout", bot.MatchTypeExact, c.handlers.HandleLogout)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/dashboard", bot.MatchTypeExact, c.handlers.HandleDashboard)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/outpasses", bot.MatchTypeExact, c.handlers.HandleOutpasses)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/students", bot.MatchTypeExact, c.handlers.HandleStudents)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/profile", bot.MatchTypeExact, c.handlers.HandleProfile)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Dialog replies and roster uploads
	c.bot.RegisterHandlerMatchFunc(isDialogMessage, c.handlers.HandleMessage)

	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

func isDialogMessage(update *models.Update) bool {
	if update.Message == nil {
		return false
	}
	if update.Message.Document != nil {
		return true
	}
	return update.Message.Text != "" && !strings.HasPrefix(update.Message.Text, "/")
}

// setCommands publishes the command menu
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "dashboard", Description: "🏠 Pending requests at a glance"},
		{Command: "outpasses", Description: "📋 Review outpass requests"},
		{Command: "students", Description: "🎓 Manage the student roster"},
		{Command: "profile", Description: "👤 Your staff profile"},
		{Command: "login", Description: "🔐 Sign in"},
		{Command: "logout", Description: "🚪 Sign out"},
		{Command: "cancel", Description: "✖️ Abandon the current step"},
		{Command: "help", Description: "❓ Commands"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start runs long polling until ctx is done
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
