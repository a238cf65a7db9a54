package model

type Student struct {
	ID             string        `json:"_id"`
	RegisterNumber string        `json:"registerNumber" validate:"required,alphanum,min=4,max=20"`
	Name           string        `json:"name" validate:"required,min=2,max=80"`
	Email          string        `json:"email" validate:"required,email"`
	Mobile         string        `json:"mobile" validate:"required,numeric,len=10"`
	ParentMobile   string        `json:"parentMobile" validate:"omitempty,numeric,len=10"`
	Department     string        `json:"department" validate:"required"`
	Year           string        `json:"year" validate:"required,oneof=I II III IV"`
	ResidenceType  ResidenceType `json:"residenceType" validate:"required,oneof=hostel dayScholar"`
	HostelName     string        `json:"hostelName" validate:"required_if=ResidenceType hostel"`
	RoomNo         string        `json:"roomNo" validate:"required_if=ResidenceType hostel"`
	Password       string        `json:"password,omitempty" validate:"omitempty,min=6"`
	Blocked        bool          `json:"blocked"`
}

// RosterUploadResult is the backend summary of a bulk spreadsheet import
type RosterUploadResult struct {
	Message  string   `json:"message"`
	Inserted int      `json:"inserted"`
	Skipped  int      `json:"skipped"`
	Existing []string `json:"existing,omitempty"`
}

// PasswordChange carries a new student password with its confirmation
type PasswordChange struct {
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}
