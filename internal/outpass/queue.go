package outpass

import (
	"slices"
	"strings"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"golang.org/x/text/cases"
)

// StatusFilter selects requests by their staff approval only
type StatusFilter string

const (
	FilterAll      StatusFilter = "all"
	FilterPending  StatusFilter = "pending"
	FilterApproved StatusFilter = "approved"
	FilterRejected StatusFilter = "rejected"
)

// ParseStatusFilter falls back to FilterAll for unknown input
func ParseStatusFilter(raw string) StatusFilter {
	switch f := StatusFilter(strings.ToLower(strings.TrimSpace(raw))); f {
	case FilterPending, FilterApproved, FilterRejected:
		return f
	}
	return FilterAll
}

func (f StatusFilter) matches(r *model.OutpassRequest) bool {
	if f == "" || f == FilterAll {
		return true
	}
	return string(r.StaffApproval.Normalize()) == string(f)
}

type QueueFilter struct {
	Status StatusFilter
	Query  string
}

// Rank filters and orders the work queue. The input slice is never reordered.
//
// Order: emergency first, then staff-pending, then most recently applied.
// Unparseable dates rank after every parseable one within their group;
// equal dates and unparseable pairs keep input order.
func Rank(requests []*model.OutpassRequest, f QueueFilter) []*model.OutpassRequest {
	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(f.Query))

	out := make([]*model.OutpassRequest, 0, len(requests))
	for _, r := range requests {
		if r == nil || !f.Status.matches(r) {
			continue
		}
		if query != "" &&
			!strings.Contains(fold.String(r.RegisterNumber), query) &&
			!strings.Contains(fold.String(r.Name), query) {
			continue
		}
		out = append(out, r)
	}

	slices.SortStableFunc(out, compareQueue)
	return out
}

func compareQueue(a, b *model.OutpassRequest) int {
	if ea, eb := a.IsEmergency(), b.IsEmergency(); ea != eb {
		if ea {
			return -1
		}
		return 1
	}

	if pa, pb := a.StaffApproval.Normalize() == model.ApprovalPending,
		b.StaffApproval.Normalize() == model.ApprovalPending; pa != pb {
		if pa {
			return -1
		}
		return 1
	}

	ta, okA := a.AppliedAt()
	tb, okB := b.AppliedAt()
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	// newest first
	return tb.Compare(ta)
}

// Counts is the per-status breakdown shown on the dashboard
type Counts struct {
	Total            int
	Pending          int
	Approved         int
	Rejected         int
	EmergencyPending int
}

func Count(requests []*model.OutpassRequest) Counts {
	var c Counts
	for _, r := range requests {
		if r == nil {
			continue
		}
		c.Total++
		switch r.StaffApproval.Normalize() {
		case model.ApprovalApproved:
			c.Approved++
		case model.ApprovalRejected:
			c.Rejected++
		default:
			c.Pending++
			if r.IsEmergency() {
				c.EmergencyPending++
			}
		}
	}
	return c
}
