package handlers

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/outpass_staff_bot/internal/api"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/students"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/state"
	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/Freeeeeet/outpass_staff_bot/internal/outpass"
	"github.com/Freeeeeet/outpass_staff_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleMessage routes a non-command message by the sender's dialog state
func (h *Handlers) HandleMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	telegramID := msg.From.ID
	currentState := h.stateManager.GetState(telegramID)

	if msg.Document != nil {
		h.handleDocument(ctx, b, update, currentState)
		return
	}
	if msg.Text == "" || strings.HasPrefix(msg.Text, "/") {
		return
	}

	h.logger.Debug("Dialog reply",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(currentState)))

	switch currentState {
	case state.StateNone:
		h.sendMessage(ctx, b, msg.Chat.ID, "ℹ️ Use /help to see what I can do.", nil)
	case state.StateLoginEmail:
		h.handleLoginEmail(ctx, b, msg)
	case state.StateLoginPassword:
		h.handleLoginPassword(ctx, b, msg)
	case state.StateDecisionRemarks:
		h.handleDecisionRemarks(ctx, b, update)
	case state.StateOutpassSearch:
		h.handleOutpassSearch(ctx, b, update)
	case state.StateStudentSearch:
		h.handleStudentSearch(ctx, b, update)
	case state.StateStudentEdit:
		h.handleStudentEdit(ctx, b, update)
	case state.StateStudentSignup:
		h.handleStudentSignup(ctx, b, update)
	case state.StateStudentPassword:
		h.handleStudentPassword(ctx, b, update)
	case state.StateStudentPasswordConfirm:
		h.handleStudentPasswordConfirm(ctx, b, update)
	case state.StateRosterUpload:
		h.sendError(ctx, b, msg.Chat.ID, common.ErrorMessage(service.ErrUnsupportedRoster))
	case state.StateProfileEdit:
		h.handleProfileEdit(ctx, b, update)
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
		h.stateManager.ClearState(telegramID)
	}
}

// isInputError reports errors the sender can fix by answering again
func isInputError(err error) bool {
	var invalid *service.InvalidInputError
	if _, ok := api.IsValidation(err); ok {
		return true
	}
	return errors.As(err, &invalid) || errors.Is(err, outpass.ErrRemarksRequired)
}

// retry keeps the dialog open and asks for the value again
func (h *Handlers) retry(ctx context.Context, b *bot.Bot, chatID int64, err error) {
	h.sendMessage(ctx, b, chatID,
		html.EscapeString(common.ErrorMessage(err))+"\n\nTry again:", common.DialogKeyboard())
}

// ===== Login =====

func (h *Handlers) handleLoginEmail(ctx context.Context, b *bot.Bot, msg *models.Message) {
	email := strings.TrimSpace(msg.Text)
	if !strings.Contains(email, "@") {
		h.retry(ctx, b, msg.Chat.ID, &service.InvalidInputError{Field: "email", Reason: "must be a valid email"})
		return
	}

	h.stateManager.SetData(msg.From.ID, state.KeyEmail, email)
	h.stateManager.SetState(msg.From.ID, state.StateLoginPassword)
	h.sendMessage(ctx, b, msg.Chat.ID,
		"🔑 Now send your password.\n<i>The message is deleted right after it is read.</i>", common.DialogKeyboard())
}

func (h *Handlers) handleLoginPassword(ctx context.Context, b *bot.Bot, msg *models.Message) {
	telegramID := msg.From.ID
	password := msg.Text
	h.deleteMessage(ctx, b, msg)

	email := h.stateManager.GetString(telegramID, state.KeyEmail)
	h.stateManager.ClearState(telegramID)

	sess, err := h.sessions.Login(ctx, telegramID, email, password)
	if err != nil {
		h.logger.Info("Login failed",
			zap.Int64("telegram_id", telegramID),
			zap.String("staff_email", email),
			zap.Error(err))

		text := common.ErrorMessage(err)
		if errors.Is(err, api.ErrUnauthorized) {
			text = "❌ Wrong email or password"
		}
		h.sendError(ctx, b, msg.Chat.ID, text+"\n\nUse /login to try again.")
		return
	}

	h.sendMessage(ctx, b, msg.Chat.ID,
		fmt.Sprintf("✅ Signed in as <b>%s</b>.", html.EscapeString(sess.StaffName)), nil)

	if _, err := h.outpasses.Refresh(ctx, sess); err != nil {
		h.handleError(ctx, b, msg, err, "dashboard")
		return
	}
	text, kb := common.BuildDashboardScreen(sess.StaffName, h.outpasses.Board(telegramID).Counts())
	h.sendMessage(ctx, b, msg.Chat.ID, text, kb)
}

// ===== Outpass queue =====

// handleDecisionRemarks submits the pending approve or reject with the
// remarks just received. Blank remarks keep the dialog open.
func (h *Handlers) handleDecisionRemarks(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}
	msg := update.Message

	id := h.stateManager.GetString(sess.TelegramID, state.KeyOutpassID)
	action := outpass.Action(h.stateManager.GetString(sess.TelegramID, state.KeyAction))

	updated, err := h.outpasses.Decide(ctx, sess, id, outpass.Decision{Action: action, Remarks: msg.Text})
	if err != nil {
		if isInputError(err) {
			h.retry(ctx, b, msg.Chat.ID, err)
			return
		}
		h.stateManager.ClearState(sess.TelegramID)
		h.handleError(ctx, b, msg, err, "decide outpass")
		return
	}
	h.stateManager.ClearState(sess.TelegramID)

	verb := "approved"
	if updated.StaffApproval == model.ApprovalRejected {
		verb = "rejected"
	}
	h.sendMessage(ctx, b, msg.Chat.ID,
		fmt.Sprintf("✅ Request of <b>%s</b> %s.", html.EscapeString(updated.Name), verb), nil)

	detail := h.outpasses.Board(sess.TelegramID).Current()
	if detail == nil || detail.Outpass.ID != id {
		detail = &model.OutpassDetail{Outpass: updated}
	}
	text, kb := common.BuildOutpassDetailScreen(detail)
	h.sendMessage(ctx, b, msg.Chat.ID, text, kb)
}

func (h *Handlers) handleOutpassSearch(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}
	h.stateManager.ClearState(sess.TelegramID)

	h.outpasses.Board(sess.TelegramID).SetQuery(update.Message.Text)
	h.sendQueue(ctx, b, update.Message.Chat.ID, sess.TelegramID)
}

// ===== Students =====

func (h *Handlers) handleStudentSearch(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}
	h.stateManager.ClearState(sess.TelegramID)

	h.students.SetQuery(sess.TelegramID, update.Message.Text)
	h.sendStudents(ctx, b, update.Message.Chat.ID, sess.TelegramID)
}

func (h *Handlers) handleStudentEdit(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}
	msg := update.Message

	id := h.stateManager.GetString(sess.TelegramID, state.KeyStudentID)
	field := h.stateManager.GetString(sess.TelegramID, state.KeyField)

	st, err := h.students.UpdateField(ctx, sess, id, field, msg.Text)
	if err != nil {
		if isInputError(err) {
			h.retry(ctx, b, msg.Chat.ID, err)
			return
		}
		h.stateManager.ClearState(sess.TelegramID)
		h.handleError(ctx, b, msg, err, "edit student field")
		return
	}
	h.stateManager.ClearState(sess.TelegramID)

	text, kb := common.BuildStudentScreen(st)
	h.sendMessage(ctx, b, msg.Chat.ID, fmt.Sprintf("✅ %s updated.\n\n%s", formatting.FieldTitle(field), text), kb)
}

// handleStudentSignup records one answer and asks the next question.
// After the last answer the student is created.
func (h *Handlers) handleStudentSignup(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}
	msg := update.Message
	telegramID := sess.TelegramID

	answers, _ := h.getData(telegramID, state.KeySignup).(map[string]string)
	step, _ := h.getData(telegramID, state.KeySignupStep).(int)
	if answers == nil || step < 0 || step >= len(students.SignupSteps) {
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, msg.Chat.ID, "❌ Signup data was lost. Start again from /students.")
		return
	}

	field := students.SignupSteps[step]
	if field == "password" {
		h.deleteMessage(ctx, b, msg)
	}

	value, err := students.SignupAnswer(field, msg.Text, answers)
	if err != nil {
		h.retry(ctx, b, msg.Chat.ID, err)
		return
	}
	answers[field] = value

	next := students.NextSignupStep(step, answers)
	if next < len(students.SignupSteps) {
		h.stateManager.SetData(telegramID, state.KeySignupStep, next)
		h.sendMessage(ctx, b, msg.Chat.ID, students.SignupPrompt(next, answers), common.DialogKeyboard())
		return
	}

	h.stateManager.ClearState(telegramID)
	created, err := h.students.Create(ctx, sess, students.SignupStudent(answers))
	if err != nil {
		h.handleError(ctx, b, msg, err, "create student")
		return
	}

	text, kb := common.BuildStudentScreen(created)
	h.sendMessage(ctx, b, msg.Chat.ID, "✅ Student created.\n\n"+text, kb)
}

func (h *Handlers) handleStudentPassword(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	h.deleteMessage(ctx, b, msg)

	if err := service.ValidateStudentField("password", msg.Text); err != nil {
		h.retry(ctx, b, msg.Chat.ID, err)
		return
	}

	h.stateManager.SetData(msg.From.ID, state.KeyPassword, msg.Text)
	h.stateManager.SetState(msg.From.ID, state.StateStudentPasswordConfirm)
	h.sendMessage(ctx, b, msg.Chat.ID, "🔑 Send the same password again to confirm:", common.DialogKeyboard())
}

func (h *Handlers) handleStudentPasswordConfirm(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	h.deleteMessage(ctx, b, msg)

	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}

	id := h.stateManager.GetString(sess.TelegramID, state.KeyStudentID)
	change := model.PasswordChange{
		Password:        h.stateManager.GetString(sess.TelegramID, state.KeyPassword),
		ConfirmPassword: msg.Text,
	}

	err := h.students.ChangePassword(ctx, sess, id, change)
	if err != nil {
		var invalid *service.InvalidInputError
		if errors.As(err, &invalid) {
			h.stateManager.SetState(sess.TelegramID, state.StateStudentPassword)
			h.sendMessage(ctx, b, msg.Chat.ID,
				"⚠️ The passwords do not match.\n\nSend the new password again:", common.DialogKeyboard())
			return
		}
		h.stateManager.ClearState(sess.TelegramID)
		h.handleError(ctx, b, msg, err, "change student password")
		return
	}
	h.stateManager.ClearState(sess.TelegramID)

	h.logger.Info("Student password changed",
		zap.Int64("telegram_id", sess.TelegramID),
		zap.String("student_id", id))
	h.sendMessage(ctx, b, msg.Chat.ID, "✅ Password changed.", nil)
}

// ===== Profile =====

func (h *Handlers) handleProfileEdit(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}
	msg := update.Message
	field := h.stateManager.GetString(sess.TelegramID, state.KeyField)

	p, err := h.staff.UpdateField(ctx, sess, field, msg.Text)
	if err != nil {
		if isInputError(err) {
			h.retry(ctx, b, msg.Chat.ID, err)
			return
		}
		h.stateManager.ClearState(sess.TelegramID)
		h.handleError(ctx, b, msg, err, "edit profile")
		return
	}
	h.stateManager.ClearState(sess.TelegramID)

	text, kb := common.BuildProfileScreen(p)
	h.sendMessage(ctx, b, msg.Chat.ID, "✅ Profile updated.\n\n"+text, kb)
}

func (h *Handlers) getData(telegramID int64, key string) interface{} {
	v, _ := h.stateManager.GetData(telegramID, key)
	return v
}
