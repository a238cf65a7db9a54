// Package outpass holds the approval workflow of an outpass request and the
// ordering of the staff work queue. Everything here is pure and has no I/O.
package outpass

import "github.com/Freeeeeet/outpass_staff_bot/internal/model"

type StageName string

const (
	StageStaff        StageName = "staff"
	StageYearIncharge StageName = "yearIncharge"
	StageWarden       StageName = "warden"
)

// DisplayState is how a stage is presented in the workflow view
type DisplayState string

const (
	DisplayCompleted     DisplayState = "completed"
	DisplayActive        DisplayState = "active"
	DisplayRejected      DisplayState = "rejected"
	DisplayNotYetReached DisplayState = "not_yet_reached"
)

type Stage struct {
	Name    StageName
	Status  model.ApprovalStatus
	Display DisplayState
}

// Stages derives the ordered workflow view of a request.
// The warden stage is present only for hostel residents.
func Stages(r *model.OutpassRequest) []Stage {
	statuses := []model.ApprovalStatus{r.StaffApproval, r.YearInchargeApproval}
	names := []StageName{StageStaff, StageYearIncharge}
	if r.IsHostel() {
		statuses = append(statuses, r.WardenApproval)
		names = append(names, StageWarden)
	}

	displays := DeriveDisplay(statuses)
	stages := make([]Stage, len(statuses))
	for i := range statuses {
		stages[i] = Stage{Name: names[i], Status: statuses[i].Normalize(), Display: displays[i]}
	}
	return stages
}

// DeriveDisplay maps ordered stage statuses to display variants.
// A pending stage is active only when it is first or its predecessor is approved.
func DeriveDisplay(statuses []model.ApprovalStatus) []DisplayState {
	out := make([]DisplayState, len(statuses))
	for i, raw := range statuses {
		switch raw.Normalize() {
		case model.ApprovalApproved:
			out[i] = DisplayCompleted
		case model.ApprovalRejected:
			out[i] = DisplayRejected
		default:
			if i == 0 || statuses[i-1].Normalize() == model.ApprovalApproved {
				out[i] = DisplayActive
			} else {
				out[i] = DisplayNotYetReached
			}
		}
	}
	return out
}

// CurrentStage returns the active stage, if any
func CurrentStage(r *model.OutpassRequest) (Stage, bool) {
	for _, s := range Stages(r) {
		if s.Display == DisplayActive {
			return s, true
		}
	}
	return Stage{}, false
}
