package common

import (
	"testing"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/Freeeeeet/outpass_staff_bot/internal/outpass"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callbackData(kb *models.InlineKeyboardMarkup) []string {
	var out []string
	for _, row := range kb.InlineKeyboard {
		for _, b := range row {
			out = append(out, b.CallbackData)
		}
	}
	return out
}

func TestOutpassDetailButtonsFollowStaffStage(t *testing.T) {
	pending := &model.OutpassDetail{Outpass: &model.OutpassRequest{ID: "op-1", StaffApproval: model.ApprovalPending}}
	_, kb := BuildOutpassDetailScreen(pending)
	data := callbackData(kb)
	assert.Contains(t, data, "op_decide:approve:op-1")
	assert.Contains(t, data, "op_decide:reject:op-1")
	assert.Contains(t, data, "op_image:op-1")

	decided := &model.OutpassDetail{Outpass: &model.OutpassRequest{ID: "op-2", StaffApproval: model.ApprovalRejected}}
	_, kb = BuildOutpassDetailScreen(decided)
	for _, d := range callbackData(kb) {
		assert.NotContains(t, d, CbOutpassDecide)
	}
}

func TestQueueScreenListsRankedPage(t *testing.T) {
	board := outpass.NewBoard()
	var items []*model.OutpassRequest
	for i := 0; i < 10; i++ {
		items = append(items, &model.OutpassRequest{
			ID:            string(rune('a' + i)),
			StaffApproval: model.ApprovalApproved,
			AppliedDate:   "2025-03-01",
		})
	}
	items = append(items, &model.OutpassRequest{ID: "urgent", OutpassType: "Emergency", StaffApproval: model.ApprovalPending})
	board.Replace(items)

	text, kb := BuildQueueScreen(board, 0)
	assert.Contains(t, text, "Showing 11 of 11")

	data := callbackData(kb)
	require.Greater(t, len(data), 6)
	assert.Equal(t, "op_filter:all", data[0])
	assert.Equal(t, "op_view:urgent", data[5])
	assert.Contains(t, data, "op_page:1")

	_, kb = BuildQueueScreen(board, 5)
	assert.Contains(t, callbackData(kb), "op_page:0")
}

func TestQueueScreenMarksActiveFilter(t *testing.T) {
	board := outpass.NewBoard()
	board.SetStatusFilter(outpass.FilterPending)
	board.SetQuery("smi")

	text, kb := BuildQueueScreen(board, 0)
	assert.Contains(t, text, "Search: smi")
	assert.Equal(t, "• Pending", kb.InlineKeyboard[0][1].Text)
	assert.Contains(t, callbackData(kb), CbOutpassClearSearch)
}

func TestStudentScreenBlockToggle(t *testing.T) {
	_, kb := BuildStudentScreen(&model.Student{ID: "s1"})
	assert.Contains(t, callbackData(kb), "st_block:s1:1")

	_, kb = BuildStudentScreen(&model.Student{ID: "s1", Blocked: true})
	assert.Contains(t, callbackData(kb), "st_block:s1:0")
}

func TestStudentEditScreenOffersEveryField(t *testing.T) {
	_, kb := BuildStudentEditScreen(&model.Student{ID: "s1"})
	data := callbackData(kb)
	assert.Contains(t, data, "st_field:s1:registerNumber")
	assert.Contains(t, data, "st_field:s1:roomNo")
	assert.Equal(t, "st_view:s1", data[len(data)-1])
}
