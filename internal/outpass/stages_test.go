package outpass

import (
	"testing"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/stretchr/testify/assert"
)

func request(staff, yearIncharge, warden model.ApprovalStatus, residence model.ResidenceType) *model.OutpassRequest {
	return &model.OutpassRequest{
		ID:                   "op-1",
		StaffApproval:        staff,
		YearInchargeApproval: yearIncharge,
		WardenApproval:       warden,
		ResidenceType:        residence,
	}
}

func displays(stages []Stage) []DisplayState {
	out := make([]DisplayState, len(stages))
	for i, s := range stages {
		out[i] = s.Display
	}
	return out
}

func TestStages(t *testing.T) {
	const (
		p = model.ApprovalPending
		a = model.ApprovalApproved
		r = model.ApprovalRejected
	)

	tests := []struct {
		name      string
		statuses  [3]model.ApprovalStatus
		residence model.ResidenceType
		expected  []DisplayState
	}{
		{
			name:      "fresh day scholar request",
			statuses:  [3]model.ApprovalStatus{p, p, p},
			residence: model.ResidenceDayScholar,
			expected:  []DisplayState{DisplayActive, DisplayNotYetReached},
		},
		{
			name:      "staff approved day scholar",
			statuses:  [3]model.ApprovalStatus{a, p, p},
			residence: model.ResidenceDayScholar,
			expected:  []DisplayState{DisplayCompleted, DisplayActive},
		},
		{
			name:      "warden active for hostel",
			statuses:  [3]model.ApprovalStatus{a, a, p},
			residence: model.ResidenceHostel,
			expected:  []DisplayState{DisplayCompleted, DisplayCompleted, DisplayActive},
		},
		{
			name:      "staff rejection blocks later stages",
			statuses:  [3]model.ApprovalStatus{r, p, p},
			residence: model.ResidenceHostel,
			expected:  []DisplayState{DisplayRejected, DisplayNotYetReached, DisplayNotYetReached},
		},
		{
			name:      "year incharge rejected",
			statuses:  [3]model.ApprovalStatus{a, r, p},
			residence: model.ResidenceHostel,
			expected:  []DisplayState{DisplayCompleted, DisplayRejected, DisplayNotYetReached},
		},
		{
			name:      "fully approved hostel",
			statuses:  [3]model.ApprovalStatus{a, a, a},
			residence: model.ResidenceHostel,
			expected:  []DisplayState{DisplayCompleted, DisplayCompleted, DisplayCompleted},
		},
		{
			name:      "missing statuses read as pending",
			statuses:  [3]model.ApprovalStatus{"", "", ""},
			residence: model.ResidenceHostel,
			expected:  []DisplayState{DisplayActive, DisplayNotYetReached, DisplayNotYetReached},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := request(tc.statuses[0], tc.statuses[1], tc.statuses[2], tc.residence)
			stages := Stages(req)
			assert.Equal(t, tc.expected, displays(stages))
		})
	}
}

func TestStagesOmitWardenForDayScholar(t *testing.T) {
	stages := Stages(request(model.ApprovalApproved, model.ApprovalPending, model.ApprovalPending, model.ResidenceDayScholar))
	assert.Len(t, stages, 2)
	assert.Equal(t, StageStaff, stages[0].Name)
	assert.Equal(t, StageYearIncharge, stages[1].Name)
	assert.Equal(t, DisplayActive, stages[1].Display)
}

func TestStagesAreReDerivable(t *testing.T) {
	req := request(model.ApprovalApproved, model.ApprovalPending, model.ApprovalPending, model.ResidenceHostel)
	assert.Equal(t, Stages(req), Stages(req))
}

func TestCurrentStage(t *testing.T) {
	stage, ok := CurrentStage(request(model.ApprovalApproved, model.ApprovalApproved, model.ApprovalPending, model.ResidenceHostel))
	assert.True(t, ok)
	assert.Equal(t, StageWarden, stage.Name)

	_, ok = CurrentStage(request(model.ApprovalRejected, model.ApprovalPending, model.ApprovalPending, model.ResidenceHostel))
	assert.False(t, ok)
}
