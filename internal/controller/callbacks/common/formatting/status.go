package formatting

import (
	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/Freeeeeet/outpass_staff_bot/internal/outpass"
)

// StatusDisplay is the emoji and label of a status
type StatusDisplay struct {
	Emoji string
	Text  string
}

func (d StatusDisplay) String() string {
	return d.Emoji + " " + d.Text
}

// GetApprovalStatusDisplay returns how an approval status is shown
func GetApprovalStatusDisplay(status model.ApprovalStatus) StatusDisplay {
	displays := map[model.ApprovalStatus]StatusDisplay{
		model.ApprovalPending:  {"⏳", "Pending"},
		model.ApprovalApproved: {"✅", "Approved"},
		model.ApprovalRejected: {"❌", "Rejected"},
	}

	if display, ok := displays[status.Normalize()]; ok {
		return display
	}

	return StatusDisplay{"❓", "Unknown"}
}

// GetStageDisplay returns how a workflow stage is shown
func GetStageDisplay(display outpass.DisplayState) StatusDisplay {
	displays := map[outpass.DisplayState]StatusDisplay{
		outpass.DisplayCompleted:     {"✅", "Completed"},
		outpass.DisplayActive:        {"🟡", "Awaiting decision"},
		outpass.DisplayRejected:      {"❌", "Rejected"},
		outpass.DisplayNotYetReached: {"⚪️", "Not yet reached"},
	}

	if d, ok := displays[display]; ok {
		return d
	}

	return StatusDisplay{"❓", "Unknown"}
}

// StageTitle is the human name of a workflow stage
func StageTitle(name outpass.StageName) string {
	switch name {
	case outpass.StageStaff:
		return "Staff"
	case outpass.StageYearIncharge:
		return "Year In-charge"
	case outpass.StageWarden:
		return "Warden"
	default:
		return string(name)
	}
}

// ResidenceTitle is the human name of a residence type
func ResidenceTitle(r model.ResidenceType) string {
	switch r {
	case model.ResidenceHostel:
		return "Hostel"
	case model.ResidenceDayScholar:
		return "Day scholar"
	default:
		return "—"
	}
}
