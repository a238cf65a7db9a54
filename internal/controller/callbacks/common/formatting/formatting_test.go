package formatting

import (
	"testing"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/Freeeeeet/outpass_staff_bot/internal/outpass"
	"github.com/stretchr/testify/assert"
)

func TestFormatOutpassButton(t *testing.T) {
	r := &model.OutpassRequest{RegisterNumber: "21CS001", Name: "Asha", OutpassType: "emergency", StaffApproval: model.ApprovalPending}
	assert.Equal(t, "🚨⏳ 21CS001 · Asha", FormatOutpassButton(r))

	r = &model.OutpassRequest{RegisterNumber: "21CS002", Name: "Bala", StaffApproval: model.ApprovalApproved}
	assert.Equal(t, "✅ 21CS002 · Bala", FormatOutpassButton(r))
}

func TestFormatStagesHostel(t *testing.T) {
	r := &model.OutpassRequest{
		ResidenceType:        model.ResidenceHostel,
		StaffApproval:        model.ApprovalApproved,
		YearInchargeApproval: model.ApprovalPending,
		WardenApproval:       model.ApprovalPending,
	}

	text := FormatStages(r)
	assert.Contains(t, text, "✅ Staff: Completed")
	assert.Contains(t, text, "🟡 Year In-charge: Awaiting decision")
	assert.Contains(t, text, "⚪️ Warden: Not yet reached")
}

func TestFormatStagesDayScholarHasNoWarden(t *testing.T) {
	r := &model.OutpassRequest{ResidenceType: model.ResidenceDayScholar, StaffApproval: model.ApprovalRejected}
	text := FormatStages(r)
	assert.Contains(t, text, "❌ Staff: Rejected")
	assert.NotContains(t, text, "Warden")
}

func TestFormatOutpassDetailEscapesAndShowsRoommates(t *testing.T) {
	d := &model.OutpassDetail{
		Outpass: &model.OutpassRequest{
			Name:            "<b>Asha</b>",
			ResidenceType:   model.ResidenceHostel,
			HostelName:      "Block A",
			AppliedDate:     "2025-03-01T10:30:00.000Z",
			StaffApproval:   model.ApprovalApproved,
			StaffApprovedBy: "Dr. Priya",
		},
		Roommates: []model.Roommate{{Name: "Ravi", RegisterNumber: "21CS009"}},
	}

	text := FormatOutpassDetail(d)
	assert.Contains(t, text, "&lt;b&gt;Asha&lt;/b&gt;")
	assert.Contains(t, text, "01 Mar 2025 10:30")
	assert.Contains(t, text, "Staff approval by Dr. Priya")
	assert.Contains(t, text, "Ravi (21CS009)")
}

func TestFormatOutpassDetailHeadlinesActiveStage(t *testing.T) {
	pending := &model.OutpassDetail{Outpass: &model.OutpassRequest{
		ResidenceType: model.ResidenceHostel,
		StaffApproval: model.ApprovalPending,
	}}
	assert.Contains(t, FormatOutpassDetail(pending), "⏳ Awaiting: <b>Staff</b>")

	withWarden := &model.OutpassDetail{Outpass: &model.OutpassRequest{
		ResidenceType:        model.ResidenceHostel,
		StaffApproval:        model.ApprovalApproved,
		YearInchargeApproval: model.ApprovalApproved,
		WardenApproval:       model.ApprovalPending,
	}}
	assert.Contains(t, FormatOutpassDetail(withWarden), "⏳ Awaiting: <b>Warden</b>")

	rejected := &model.OutpassDetail{Outpass: &model.OutpassRequest{StaffApproval: model.ApprovalRejected}}
	assert.NotContains(t, FormatOutpassDetail(rejected), "Awaiting")
}

func TestFormatBackendDate(t *testing.T) {
	assert.Equal(t, "01 Mar 2025", FormatBackendDate("2025-03-01"))
	assert.Equal(t, "next week", FormatBackendDate("next week"))
	assert.Equal(t, "—", FormatBackendDate(""))
}

func TestFormatDashboard(t *testing.T) {
	text := FormatDashboard("Dr. Priya", outpass.Counts{Total: 4, Pending: 2, Approved: 1, Rejected: 1, EmergencyPending: 1})
	assert.Contains(t, text, "Pending: 2")
	assert.Contains(t, text, "Emergency pending: 1")

	text = FormatDashboard("Dr. Priya", outpass.Counts{})
	assert.NotContains(t, text, "Emergency")
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1 student", Students(1))
	assert.Equal(t, "0 requests", Requests(0))
	assert.Equal(t, "3 requests", Requests(3))
}
