package state

// UserState is the dialog step a staff chat is currently in
type UserState string

const (
	StateNone UserState = ""

	// Login
	StateLoginEmail    UserState = "login_email"
	StateLoginPassword UserState = "login_password"

	// Outpass queue
	StateDecisionRemarks UserState = "decision_remarks"
	StateOutpassSearch   UserState = "outpass_search"

	// Students
	StateStudentSearch          UserState = "student_search"
	StateStudentEdit            UserState = "student_edit"
	StateStudentSignup          UserState = "student_signup"
	StateStudentPassword        UserState = "student_password"
	StateStudentPasswordConfirm UserState = "student_password_confirm"
	StateRosterUpload           UserState = "roster_upload"

	// Profile
	StateProfileEdit UserState = "profile_edit"
)

// Keys of the per-dialog data
const (
	KeyEmail      = "email"
	KeyOutpassID  = "outpass_id"
	KeyAction     = "action"
	KeyStudentID  = "student_id"
	KeyField      = "field"
	KeyPassword   = "password"
	KeySignup     = "signup"
	KeySignupStep = "signup_step"
)

// UserData holds the state and the answers collected so far
type UserData struct {
	State UserState
	Data  map[string]interface{}
}
