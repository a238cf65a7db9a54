package outpass

import (
	"errors"
	"strings"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

var (
	ErrStageNotPending = errors.New("staff stage is not pending")
	ErrRemarksRequired = errors.New("remarks are required")
	ErrUnknownAction   = errors.New("unknown approval action")
)

// Status is the staff approval value the action produces
func (a Action) Status() (model.ApprovalStatus, error) {
	switch a {
	case ActionApprove:
		return model.ApprovalApproved, nil
	case ActionReject:
		return model.ApprovalRejected, nil
	}
	return "", ErrUnknownAction
}

// Decision is what gets submitted to the backend for the staff stage
type Decision struct {
	Action  Action
	Remarks string
}

// CheckDecision runs the transition guard without touching the request
func CheckDecision(r *model.OutpassRequest, d Decision) error {
	if _, err := d.Action.Status(); err != nil {
		return err
	}
	if r.StaffApproval.Normalize() != model.ApprovalPending {
		return ErrStageNotPending
	}
	if strings.TrimSpace(d.Remarks) == "" {
		return ErrRemarksRequired
	}
	return nil
}

// Decide applies a staff decision in place. On approval the acting staff
// name becomes staffApprovedBy; a rejection leaves it untouched.
func Decide(r *model.OutpassRequest, d Decision, staffName string) error {
	if err := CheckDecision(r, d); err != nil {
		return err
	}

	status, _ := d.Action.Status()
	record(r, status, staffName)
	return nil
}

func record(r *model.OutpassRequest, status model.ApprovalStatus, staffName string) {
	r.StaffApproval = status
	if status == model.ApprovalApproved {
		r.StaffApprovedBy = staffName
	}
}
