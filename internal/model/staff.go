package model

// StaffProfile is the staff member's own portal profile
type StaffProfile struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Year        string `json:"year"`
	Photo       string `json:"photo"`
}

// StaffProfileUpdate is the partial document sent on profile edits.
// Nil fields are omitted and stay unchanged on the backend.
type StaffProfileUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=80"`
	Mobile      *string `json:"mobile,omitempty" validate:"omitempty,numeric,len=10"`
	Department  *string `json:"department,omitempty" validate:"omitempty,min=2,max=80"`
	Designation *string `json:"designation,omitempty" validate:"omitempty,min=2,max=80"`
}
