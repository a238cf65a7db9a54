package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
		ok   bool
	}{
		{raw: "2025-03-01T10:30:00.000Z", want: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC), ok: true},
		{raw: "2025-03-01T10:30:00+05:30", want: time.Date(2025, 3, 1, 5, 0, 0, 0, time.UTC), ok: true},
		{raw: "2025-03-01 10:30:00", want: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC), ok: true},
		{raw: " 2025-03-01 ", want: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{raw: "", ok: false},
		{raw: "yesterday", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseDate(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}

func TestOutpassRequestNormalize(t *testing.T) {
	r := &OutpassRequest{StaffApproval: "approved", YearInchargeApproval: "", WardenApproval: "weird"}
	r.Normalize()

	assert.Equal(t, ApprovalApproved, r.StaffApproval)
	assert.Equal(t, ApprovalPending, r.YearInchargeApproval)
	assert.Equal(t, ApprovalPending, r.WardenApproval)
}

func TestOutpassRequestPredicates(t *testing.T) {
	r := &OutpassRequest{OutpassType: " emergency ", ResidenceType: ResidenceHostel, StaffApproval: ApprovalPending}
	assert.True(t, r.IsEmergency())
	assert.True(t, r.IsHostel())
	assert.True(t, r.IsStaffPending())

	r = &OutpassRequest{OutpassType: "Home visit", ResidenceType: ResidenceDayScholar, StaffApproval: ApprovalRejected}
	assert.False(t, r.IsEmergency())
	assert.False(t, r.IsHostel())
	assert.False(t, r.IsStaffPending())
}

func TestOutpassRequestCloneIsDeep(t *testing.T) {
	r := &OutpassRequest{ID: "1", LastOutpass: &LastOutpass{Reason: "fever"}}
	c := r.Clone()
	c.LastOutpass.Reason = "changed"
	c.ID = "2"

	assert.Equal(t, "fever", r.LastOutpass.Reason)
	assert.Equal(t, "1", r.ID)
}

func TestSessionExpired(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	assert.False(t, (&Session{}).Expired(now))
	assert.False(t, (&Session{ExpiresAt: now.Add(time.Minute)}).Expired(now))
	assert.True(t, (&Session{ExpiresAt: now}).Expired(now))
}
