package models

// SessionState is the position of the session in its lifecycle.
//
//	Uninitialized -> Verifying -> LoggedIn | Anonymous
//	Anonymous     -> LoggedIn   (login)
//	LoggedIn      -> Anonymous  (logout, rejected or expired token)
type SessionState int

const (
	// SessionUninitialized is the state before Bootstrap has started.
	SessionUninitialized SessionState = iota

	// SessionVerifying is the state while a stored token is being checked.
	SessionVerifying

	// SessionAnonymous means the startup sequence finished without a usable
	// token, or the user logged out.
	SessionAnonymous

	// SessionLoggedIn means the token passed verification and the profile
	// was fetched.
	SessionLoggedIn
)

// String implements fmt.Stringer.
func (s SessionState) String() string {
	switch s {
	case SessionUninitialized:
		return "uninitialized"
	case SessionVerifying:
		return "verifying"
	case SessionAnonymous:
		return "anonymous"
	case SessionLoggedIn:
		return "logged_in"
	default:
		return "unknown"
	}
}

// Session is an immutable snapshot of the authentication state.
//
// IsLoggedIn is never true while IsInitialized is false, and Token is
// non-empty whenever IsLoggedIn is true.
type Session struct {
	Token         string
	User          *User
	IsLoggedIn    bool
	IsInitialized bool
	State         SessionState
}

// Anonymous returns the logged-out session that keeps the initialized flag.
func (s Session) Anonymous() Session {
	return Session{
		IsInitialized: s.IsInitialized,
		State:         SessionAnonymous,
	}
}
