package formatting

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
)

var fieldTitles = map[string]string{
	"registerNumber": "Register number",
	"name":           "Name",
	"email":          "Email",
	"mobile":         "Mobile",
	"parentMobile":   "Parent mobile",
	"department":     "Department",
	"designation":    "Designation",
	"year":           "Year",
	"residenceType":  "Residence",
	"hostelName":     "Hostel",
	"roomNo":         "Room",
	"password":       "Password",
}

// FieldTitle is the human label of a form field
func FieldTitle(field string) string {
	if t, ok := fieldTitles[field]; ok {
		return t
	}
	return field
}

func FormatStudentButton(s *model.Student) string {
	label := fmt.Sprintf("%s · %s", s.RegisterNumber, s.Name)
	if s.Blocked {
		label = "🚫 " + label
	}
	return label
}

func FormatStudentListHeader(query string, shown int) string {
	var sb strings.Builder
	sb.WriteString("🎓 <b>Students</b>\n")
	if q := strings.TrimSpace(query); q != "" {
		fmt.Fprintf(&sb, "Search: %s\n", esc(q))
	}
	fmt.Fprintf(&sb, "%s", Students(shown))
	if shown == 0 {
		sb.WriteString("\n\nNo students found.")
	}
	return sb.String()
}

func FormatStudent(s *model.Student) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🎓 <b>%s</b>\n\n", esc(s.Name))
	fmt.Fprintf(&sb, "🆔 %s\n", esc(s.RegisterNumber))
	fmt.Fprintf(&sb, "📧 %s\n", esc(s.Email))
	fmt.Fprintf(&sb, "📱 %s · parent %s\n", esc(s.Mobile), esc(s.ParentMobile))
	fmt.Fprintf(&sb, "🏫 %s, year %s\n", esc(s.Department), esc(s.Year))
	fmt.Fprintf(&sb, "🏠 %s", ResidenceTitle(s.ResidenceType))
	if s.ResidenceType == model.ResidenceHostel {
		fmt.Fprintf(&sb, ": %s, room %s", esc(s.HostelName), esc(s.RoomNo))
	}
	if s.Blocked {
		sb.WriteString("\n\n🚫 <b>Blocked</b>: cannot apply for outpasses")
	}
	return sb.String()
}

func FormatRosterUpload(res *model.RosterUploadResult) string {
	var sb strings.Builder
	sb.WriteString("📥 <b>Roster uploaded</b>\n\n")
	if res.Message != "" {
		fmt.Fprintf(&sb, "%s\n", esc(res.Message))
	}
	fmt.Fprintf(&sb, "✅ Added: %d\n", res.Inserted)
	fmt.Fprintf(&sb, "⏭ Skipped: %d", res.Skipped)
	if len(res.Existing) > 0 {
		fmt.Fprintf(&sb, "\n\nAlready registered: %s", esc(strings.Join(res.Existing, ", ")))
	}
	return sb.String()
}

func FormatProfile(p *model.StaffProfile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "👤 <b>%s</b>\n\n", esc(p.Name))
	fmt.Fprintf(&sb, "📧 %s\n", esc(p.Email))
	fmt.Fprintf(&sb, "📱 %s\n", esc(p.Mobile))
	fmt.Fprintf(&sb, "🏫 %s\n", esc(p.Department))
	fmt.Fprintf(&sb, "💼 %s", esc(p.Designation))
	if p.Year != "" {
		fmt.Fprintf(&sb, "\n📚 Year %s", esc(p.Year))
	}
	return sb.String()
}
