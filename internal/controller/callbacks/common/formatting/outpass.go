package formatting

import (
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/Freeeeeet/outpass_staff_bot/internal/outpass"
)

func esc(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return html.EscapeString(s)
}

// FormatOutpassButton is the one-line label of a queue entry
func FormatOutpassButton(r *model.OutpassRequest) string {
	prefix := GetApprovalStatusDisplay(r.StaffApproval).Emoji
	if r.IsEmergency() {
		prefix = "🚨" + prefix
	}
	return fmt.Sprintf("%s %s · %s", prefix, r.RegisterNumber, r.Name)
}

// FormatDashboard renders the staff landing screen
func FormatDashboard(staffName string, c outpass.Counts) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "👋 <b>%s</b>\n\n", esc(staffName))
	sb.WriteString("📊 <b>Outpass requests</b>\n")
	fmt.Fprintf(&sb, "Total: %d\n", c.Total)
	fmt.Fprintf(&sb, "⏳ Pending: %d\n", c.Pending)
	fmt.Fprintf(&sb, "✅ Approved: %d\n", c.Approved)
	fmt.Fprintf(&sb, "❌ Rejected: %d\n", c.Rejected)
	if c.EmergencyPending > 0 {
		fmt.Fprintf(&sb, "\n🚨 <b>Emergency pending: %d</b>", c.EmergencyPending)
	}
	return sb.String()
}

// FormatQueueHeader renders the title of the queue screen
func FormatQueueHeader(f outpass.QueueFilter, shown, total int) string {
	var sb strings.Builder
	sb.WriteString("📋 <b>Outpass requests</b>\n")
	fmt.Fprintf(&sb, "Filter: %s\n", FilterTitle(f.Status))
	if q := strings.TrimSpace(f.Query); q != "" {
		fmt.Fprintf(&sb, "Search: %s\n", esc(q))
	}
	fmt.Fprintf(&sb, "Showing %d of %d\n", shown, total)
	if shown == 0 {
		sb.WriteString("\nNo requests match.")
	} else {
		sb.WriteString("\n🚨 emergency first, then pending, newest first.")
	}
	return sb.String()
}

// FilterTitle is the human name of a status filter
func FilterTitle(f outpass.StatusFilter) string {
	switch f {
	case outpass.FilterPending:
		return "Pending"
	case outpass.FilterApproved:
		return "Approved"
	case outpass.FilterRejected:
		return "Rejected"
	default:
		return "All"
	}
}

// FormatStages renders the approval workflow as text lines
func FormatStages(r *model.OutpassRequest) string {
	var sb strings.Builder
	for i, s := range outpass.Stages(r) {
		if i > 0 {
			sb.WriteString("\n   ↓\n")
		}
		d := GetStageDisplay(s.Display)
		fmt.Fprintf(&sb, "%s %s: %s", d.Emoji, StageTitle(s.Name), d.Text)
	}
	return sb.String()
}

// FormatOutpassDetail renders the detail screen of a request
func FormatOutpassDetail(d *model.OutpassDetail) string {
	r := d.Outpass
	var sb strings.Builder

	title := "📝 <b>Outpass request</b>"
	if r.IsEmergency() {
		title = "🚨 <b>Emergency outpass request</b>"
	}
	sb.WriteString(title + "\n")
	if stage, ok := outpass.CurrentStage(r); ok {
		fmt.Fprintf(&sb, "⏳ Awaiting: <b>%s</b>\n", StageTitle(stage.Name))
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "👤 %s (%s)\n", esc(r.Name), esc(r.RegisterNumber))
	fmt.Fprintf(&sb, "🏫 %s, year %s\n", esc(r.Department), esc(r.Year))
	fmt.Fprintf(&sb, "📱 %s · parent %s\n", esc(r.Mobile), esc(r.ParentMobile))
	fmt.Fprintf(&sb, "🏠 %s", ResidenceTitle(r.ResidenceType))
	if r.IsHostel() {
		fmt.Fprintf(&sb, ": %s, room %s", esc(r.HostelName), esc(r.RoomNo))
	}
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "🏷 Type: %s\n", esc(r.OutpassType))
	fmt.Fprintf(&sb, "💬 Reason: %s\n", esc(r.Reason))
	fmt.Fprintf(&sb, "🗓 From: %s\n", FormatBackendDate(r.FromDate))
	fmt.Fprintf(&sb, "🗓 To: %s\n", FormatBackendDate(r.ToDate))
	fmt.Fprintf(&sb, "📨 Applied: %s\n\n", FormatBackendDate(r.AppliedDate))

	sb.WriteString("<b>Approval workflow</b>\n")
	sb.WriteString(FormatStages(r))
	if r.StaffApprovedBy != "" {
		fmt.Fprintf(&sb, "\n\n✍️ Staff approval by %s", esc(r.StaffApprovedBy))
	}

	if last := r.LastOutpass; last != nil {
		sb.WriteString("\n\n<b>Previous outpass</b>\n")
		fmt.Fprintf(&sb, "%s → %s\n", FormatBackendDate(last.FromDate), FormatBackendDate(last.ToDate))
		fmt.Fprintf(&sb, "💬 %s\n", esc(last.Reason))
		fmt.Fprintf(&sb, "%s", GetApprovalStatusDisplay(last.Status))
		if last.ApprovedBy != "" {
			fmt.Fprintf(&sb, " by %s", esc(last.ApprovedBy))
		}
	}

	if len(d.Roommates) > 0 {
		sb.WriteString("\n\n<b>Roommates</b>\n")
		for _, m := range d.Roommates {
			fmt.Fprintf(&sb, "• %s (%s) %s\n", esc(m.Name), esc(m.RegisterNumber), esc(m.Mobile))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
