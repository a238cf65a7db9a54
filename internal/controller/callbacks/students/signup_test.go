package students

import (
	"testing"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/Freeeeeet/outpass_staff_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupDialogForDayScholar(t *testing.T) {
	replies := map[string]string{
		"registerNumber": "21CS045",
		"name":           "Bala K",
		"email":          "bala@college.edu",
		"mobile":         "9876543210",
		"parentMobile":   "-",
		"department":     "CSE",
		"year":           "iii",
		"residenceType":  "Day Scholar",
		"password":       "secret1",
	}

	answers := map[string]string{}
	var asked []string
	for step := 0; step < len(SignupSteps); step = NextSignupStep(step, answers) {
		field := SignupSteps[step]
		asked = append(asked, field)
		value, err := SignupAnswer(field, replies[field], answers)
		require.NoError(t, err, field)
		answers[field] = value
	}

	assert.NotContains(t, asked, "hostelName")
	assert.NotContains(t, asked, "roomNo")
	assert.Contains(t, SignupPrompt(10, answers), "step 9 of 9")

	st := SignupStudent(answers)
	assert.Equal(t, model.ResidenceDayScholar, st.ResidenceType)
	assert.Equal(t, "III", st.Year)
	assert.Empty(t, st.ParentMobile)
	assert.Equal(t, "secret1", st.Password)
}

func TestSignupHostelQuestionsAreRequired(t *testing.T) {
	answers := map[string]string{"residenceType": "hostel"}

	assert.Equal(t, 8, NextSignupStep(7, answers))
	_, err := SignupAnswer("hostelName", " ", answers)
	var invalid *service.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "hostelName", invalid.Field)

	value, err := SignupAnswer("roomNo", " B-204 ", answers)
	require.NoError(t, err)
	assert.Equal(t, "B-204", value)
}

func TestSignupAnswerRejectsBadInput(t *testing.T) {
	_, err := SignupAnswer("mobile", "12345", map[string]string{})
	assert.Error(t, err)

	_, err = SignupAnswer("residenceType", "campus", map[string]string{})
	assert.Error(t, err)

	assert.Contains(t, SignupPrompt(0, nil), "step 1 of 11")
	assert.Empty(t, SignupPrompt(len(SignupSteps), nil))
}
