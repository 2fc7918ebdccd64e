package account

// State is the session/entitlement state machine. Exactly one state
// holds at a time; `authenticated` and `paid` are derived views of it,
// never independently toggled flags.
type State int

const (
	LoggedOut State = iota
	LoggedInUnpaid
	LoggedInPaid
)

// Authenticated reports whether the state carries a validated identity.
func (s State) Authenticated() bool {
	return s == LoggedInUnpaid || s == LoggedInPaid
}

// Paid reports whether the state carries the paid entitlement.
func (s State) Paid() bool {
	return s == LoggedInPaid
}

func (s State) String() string {
	switch s {
	case LoggedInUnpaid:
		return "logged-in"
	case LoggedInPaid:
		return "logged-in (paid)"
	default:
		return "logged-out"
	}
}

// LogoutReason distinguishes a user-chosen logout from an idle-timeout
// expiry so the UI can explain why the user was signed out.
type LogoutReason int

const (
	LogoutUser LogoutReason = iota
	LogoutIdle
)

func (r LogoutReason) String() string {
	if r == LogoutIdle {
		return "session expired (idle)"
	}
	return "logged out"
}
