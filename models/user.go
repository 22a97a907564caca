package models

// User is the administrator profile returned by the backend after a
// successful login or a "who am I" call.
type User struct {
	// ID is the backend identifier of the account.
	ID ID `json:"id,omitempty"`

	// Email is the login identifier of the administrator.
	Email string `json:"email"`

	// FirstName and LastName are display-only.
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	// Role is the authorization role assigned by the backend (e.g. "admin").
	Role string `json:"role,omitempty"`
}

// DisplayName returns the full name of the user, falling back to the email
// when no name is set.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Email
	}
}
