package students

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/Freeeeeet/outpass_staff_bot/internal/service"
)

// SignupSteps are the questions of the single signup dialog, in order
var SignupSteps = append(append([]string{}, service.StudentFieldOrder...), "password")

var signupHints = map[string]string{
	"registerNumber": "e.g. 21CS045",
	"mobile":         "10 digits",
	"parentMobile":   "10 digits, or - to skip",
	"year":           "I, II, III or IV",
	"residenceType":  "hostel or day scholar",
	"password":       "at least 6 characters",
}

// SignupPrompt is the question asked at step
func SignupPrompt(step int, answers map[string]string) string {
	if step < 0 || step >= len(SignupSteps) {
		return ""
	}
	field := SignupSteps[step]

	var sb strings.Builder
	fmt.Fprintf(&sb, "➕ <b>New student</b> · step %d of %d\n\n", signupPosition(step, answers), signupTotal(answers))
	fmt.Fprintf(&sb, "%s?", formatting.FieldTitle(field))
	if hint, ok := signupHints[field]; ok {
		fmt.Fprintf(&sb, "\n<i>%s</i>", hint)
	}
	return sb.String()
}

// SignupAnswer normalizes and checks one reply of the dialog
func SignupAnswer(field, raw string, answers map[string]string) (string, error) {
	value := strings.TrimSpace(raw)

	switch field {
	case "parentMobile":
		if value == "-" {
			value = ""
		}
	case "year":
		value = strings.ToUpper(value)
	case "residenceType":
		switch strings.ToLower(strings.ReplaceAll(value, " ", "")) {
		case "hostel":
			value = string(model.ResidenceHostel)
		case "dayscholar":
			value = string(model.ResidenceDayScholar)
		}
	case "hostelName", "roomNo":
		if value == "" && answers["residenceType"] == string(model.ResidenceHostel) {
			return "", &service.InvalidInputError{Field: field, Reason: "value is required"}
		}
	}

	if err := service.ValidateStudentField(field, value); err != nil {
		return "", err
	}
	return value, nil
}

// NextSignupStep returns the step after step. Hostel questions are
// skipped for day scholars. len(SignupSteps) means the dialog is done.
func NextSignupStep(step int, answers map[string]string) int {
	next := step + 1
	for next < len(SignupSteps) && skipStep(SignupSteps[next], answers) {
		next++
	}
	return next
}

// SignupStudent builds the student from a completed dialog
func SignupStudent(answers map[string]string) *model.Student {
	return &model.Student{
		RegisterNumber: answers["registerNumber"],
		Name:           answers["name"],
		Email:          answers["email"],
		Mobile:         answers["mobile"],
		ParentMobile:   answers["parentMobile"],
		Department:     answers["department"],
		Year:           answers["year"],
		ResidenceType:  model.ResidenceType(answers["residenceType"]),
		HostelName:     answers["hostelName"],
		RoomNo:         answers["roomNo"],
		Password:       answers["password"],
	}
}

func skipStep(field string, answers map[string]string) bool {
	if field != "hostelName" && field != "roomNo" {
		return false
	}
	return answers["residenceType"] == string(model.ResidenceDayScholar)
}

func signupTotal(answers map[string]string) int {
	total := len(SignupSteps)
	if answers["residenceType"] == string(model.ResidenceDayScholar) {
		total -= 2
	}
	return total
}

func signupPosition(step int, answers map[string]string) int {
	pos := 1
	for i := 0; i < step; i++ {
		if !skipStep(SignupSteps[i], answers) {
			pos++
		}
	}
	return pos
}
