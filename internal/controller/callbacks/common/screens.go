package common

import (
	"fmt"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/Freeeeeet/outpass_staff_bot/internal/outpass"
	"github.com/Freeeeeet/outpass_staff_bot/internal/service"
	"github.com/go-telegram/bot/models"
)

// BuildDashboardScreen renders the landing screen of a logged-in staff member
func BuildDashboardScreen(staffName string, counts outpass.Counts) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder().
		Row(keyboard.Button("📋 Outpass requests", CbOutpasses)).
		Row(
			keyboard.Button("🎓 Students", CbStudents),
			keyboard.Button("👤 Profile", CbProfile),
		).
		Row(keyboard.Button("🚪 Log out", CbLogout)).
		Build()

	return formatting.FormatDashboard(staffName, counts), kb
}

// BuildQueueScreen renders one page of the chat's ranked queue
func BuildQueueScreen(board *outpass.Board, page int) (string, *models.InlineKeyboardMarkup) {
	view := board.View()
	filter := board.Filter()
	total := board.Counts().Total

	current, start, end, pages := keyboard.Page(len(view), page)

	kb := keyboard.NewBuilder()

	filters := []outpass.StatusFilter{outpass.FilterAll, outpass.FilterPending, outpass.FilterApproved, outpass.FilterRejected}
	row := make([]models.InlineKeyboardButton, 0, len(filters))
	for _, f := range filters {
		label := formatting.FilterTitle(f)
		if f == filter.Status {
			label = "• " + label
		}
		row = append(row, keyboard.Button(label, CbOutpassFilter+string(f)))
	}
	kb.AddRow(row)

	if filter.Query != "" {
		kb.Row(
			keyboard.Button("🔍 New search", CbOutpassSearch),
			keyboard.Button("✖️ Clear search", CbOutpassClearSearch),
		)
	} else {
		kb.Row(keyboard.Button("🔍 Search by name or register no.", CbOutpassSearch))
	}

	for _, r := range view[start:end] {
		kb.Row(keyboard.Button(formatting.FormatOutpassButton(r), CbOutpassView+r.ID))
	}

	kb.AddPagination(CbOutpassPage, current, pages)
	kb.Row(
		keyboard.Button("🔄 Refresh", CbOutpasses),
		keyboard.MainMenuButton(),
	)

	return formatting.FormatQueueHeader(filter, len(view), total), kb.Build()
}

// BuildOutpassDetailScreen renders a request; decision buttons appear only
// while the staff stage is pending.
func BuildOutpassDetailScreen(d *model.OutpassDetail) (string, *models.InlineKeyboardMarkup) {
	r := d.Outpass
	kb := keyboard.NewBuilder()

	if r.IsStaffPending() {
		kb.Row(
			keyboard.Button("✅ Approve", fmt.Sprintf("%s%s:%s", CbOutpassDecide, outpass.ActionApprove, r.ID)),
			keyboard.Button("❌ Reject", fmt.Sprintf("%s%s:%s", CbOutpassDecide, outpass.ActionReject, r.ID)),
		)
	}
	kb.Row(keyboard.Button("🖼 Workflow image", CbOutpassImage+r.ID))
	kb.AddBackButton(CbOutpassPage+"0")

	return formatting.FormatOutpassDetail(d), kb.Build()
}

// BuildStudentsScreen renders one page of the roster
func BuildStudentsScreen(students []*model.Student, query string, page int) (string, *models.InlineKeyboardMarkup) {
	current, start, end, pages := keyboard.Page(len(students), page)

	kb := keyboard.NewBuilder()
	if query != "" {
		kb.Row(
			keyboard.Button("🔍 New search", CbStudentSearch),
			keyboard.Button("✖️ Clear search", CbStudentClearSearch),
		)
	} else {
		kb.Row(keyboard.Button("🔍 Search", CbStudentSearch))
	}

	for _, s := range students[start:end] {
		kb.Row(keyboard.Button(formatting.FormatStudentButton(s), CbStudentView+s.ID))
	}

	kb.AddPagination(CbStudentPage, current, pages)
	kb.Row(
		keyboard.Button("➕ Add student", CbStudentNew),
		keyboard.Button("📥 Upload roster", CbStudentUpload),
	)
	kb.Row(
		keyboard.Button("📄 Template", CbStudentTemplate),
		keyboard.Button("📤 Export", CbStudentExport),
	)
	kb.Row(
		keyboard.Button("🔄 Refresh", CbStudents),
		keyboard.MainMenuButton(),
	)

	return formatting.FormatStudentListHeader(query, len(students)), kb.Build()
}

func BuildStudentScreen(s *model.Student) (string, *models.InlineKeyboardMarkup) {
	blockLabel, blockArg := "🚫 Block", "1"
	if s.Blocked {
		blockLabel, blockArg = "✅ Unblock", "0"
	}

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("✏️ Edit", CbStudentEdit+s.ID),
			keyboard.Button("🔑 Password", CbStudentPassword+s.ID),
		).
		Row(
			keyboard.Button(blockLabel, fmt.Sprintf("%s%s:%s", CbStudentBlock, s.ID, blockArg)),
			keyboard.Button("🗑 Delete", CbStudentDelete+s.ID),
		).
		Row(keyboard.BackButton(CbStudentPage + "0")).
		Build()

	return formatting.FormatStudent(s), kb
}

func BuildStudentEditScreen(s *model.Student) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder()

	var row []models.InlineKeyboardButton
	for _, field := range service.StudentFieldOrder {
		row = append(row, keyboard.Button(formatting.FieldTitle(field), fmt.Sprintf("%s%s:%s", CbStudentField, s.ID, field)))
		if len(row) == 2 {
			kb.AddRow(row)
			row = nil
		}
	}
	kb.AddRow(row)
	kb.AddBackButton(CbStudentView + s.ID)

	text := fmt.Sprintf("✏️ <b>Edit %s</b>\n\nChoose the field to change:", formatting.FormatStudentButton(s))
	return text, kb.Build()
}

func BuildStudentDeleteScreen(s *model.Student) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder().
		AddRows(keyboard.ConfirmCancelButtons(CbStudentConfirmDelete+s.ID, CbStudentView+s.ID)).
		Build()

	text := fmt.Sprintf("🗑 Delete <b>%s</b>?\n\nThe student account will be removed from the portal.", formatting.FormatStudentButton(s))
	return text, kb
}

func BuildProfileScreen(p *model.StaffProfile) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder()

	var row []models.InlineKeyboardButton
	for _, field := range service.ProfileFields {
		row = append(row, keyboard.Button("✏️ "+formatting.FieldTitle(field), CbProfileEdit+field))
		if len(row) == 2 {
			kb.AddRow(row)
			row = nil
		}
	}
	kb.AddRow(row)
	kb.AddMainMenuButton()

	return formatting.FormatProfile(p), kb.Build()
}

// DialogKeyboard is attached to dialog prompts
func DialogKeyboard() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().Row(keyboard.CancelButton(CbCancel)).Build()
}
