package model

import (
	"strings"
	"time"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Valid reports whether the status is one of the three known values
func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// Normalize maps missing or unknown values to pending, the status every request is created with
func (s ApprovalStatus) Normalize() ApprovalStatus {
	lowered := ApprovalStatus(strings.ToLower(strings.TrimSpace(string(s))))
	if lowered.Valid() {
		return lowered
	}
	return ApprovalPending
}

type ResidenceType string

const (
	ResidenceHostel     ResidenceType = "hostel"
	ResidenceDayScholar ResidenceType = "dayScholar"
)

const OutpassTypeEmergency = "Emergency"

// LastOutpass is the read-only summary of the student's previous outpass
type LastOutpass struct {
	FromDate   string         `json:"fromDate"`
	ToDate     string         `json:"toDate"`
	Reason     string         `json:"reason"`
	ApprovedBy string         `json:"approvedBy"`
	Status     ApprovalStatus `json:"status"`
}

type OutpassRequest struct {
	ID             string `json:"_id"`
	RegisterNumber string `json:"registerNumber"`
	Name           string `json:"name"`
	Year           string `json:"year"`
	Department     string `json:"department"`
	Mobile         string `json:"mobile"`
	Photo          string `json:"photo"`
	ParentMobile   string `json:"parentMobile"`
	HostelName     string `json:"hostelName"`
	RoomNo         string `json:"roomNo"`

	Reason        string        `json:"reason"`
	FromDate      string        `json:"fromDate"`
	ToDate        string        `json:"toDate"`
	OutpassType   string        `json:"outpassType"`
	ResidenceType ResidenceType `json:"residenceType"`
	AppliedDate   string        `json:"appliedDate"`

	StaffApproval        ApprovalStatus `json:"staffApproval"`
	YearInchargeApproval ApprovalStatus `json:"yearInchargeApproval"`
	WardenApproval       ApprovalStatus `json:"wardenApproval"`
	StaffApprovedBy      string         `json:"staffApprovedBy,omitempty"`

	LastOutpass *LastOutpass `json:"lastOutpass,omitempty"`
}

// Roommate is a hostel roommate listed on the detail screen
type Roommate struct {
	RegisterNumber string `json:"registerNumber"`
	Name           string `json:"name"`
	Mobile         string `json:"mobile"`
}

// OutpassDetail is the full record returned for a single request
type OutpassDetail struct {
	Outpass   *OutpassRequest `json:"outpass"`
	Roommates []Roommate      `json:"roommates"`
}

// Normalize fills missing approval fields with pending
func (r *OutpassRequest) Normalize() {
	r.StaffApproval = r.StaffApproval.Normalize()
	r.YearInchargeApproval = r.YearInchargeApproval.Normalize()
	r.WardenApproval = r.WardenApproval.Normalize()
}

// IsEmergency checks the outpass type case-insensitively
func (r *OutpassRequest) IsEmergency() bool {
	return strings.EqualFold(strings.TrimSpace(r.OutpassType), OutpassTypeEmergency)
}

// IsHostel reports whether the warden stage applies
func (r *OutpassRequest) IsHostel() bool {
	return r.ResidenceType == ResidenceHostel
}

// IsStaffPending checks if the staff stage still awaits a decision
func (r *OutpassRequest) IsStaffPending() bool {
	return r.StaffApproval == ApprovalPending
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// AppliedAt parses AppliedDate; ok is false when the value is empty or unparseable
func (r *OutpassRequest) AppliedAt() (time.Time, bool) {
	return ParseDate(r.AppliedDate)
}

// ParseDate parses the date formats the backend emits
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Clone returns a copy that shares no pointers with the receiver
func (r *OutpassRequest) Clone() *OutpassRequest {
	c := *r
	if r.LastOutpass != nil {
		last := *r.LastOutpass
		c.LastOutpass = &last
	}
	return &c
}
