package account

import "time"

// IdleTimeout is how long an authenticated session survives without a
// qualifying user interaction. Aimed at shared and public machines.
const IdleTimeout = 15 * time.Minute

// IdleTimer tracks the inactivity deadline. It is armed only while a
// session is authenticated; Fire reports expiry at most once per arming.
type IdleTimer struct {
	deadline time.Time
	armed    bool
}

// Arm starts (or restarts) the countdown from now.
func (t *IdleTimer) Arm(now time.Time) {
	t.armed = true
	t.deadline = now.Add(IdleTimeout)
}

// Touch resets the countdown from now. No-op while disarmed, so
// interactions on the login screen don't start a timer.
func (t *IdleTimer) Touch(now time.Time) {
	if t.armed {
		t.deadline = now.Add(IdleTimeout)
	}
}

// Disarm stops the countdown.
func (t *IdleTimer) Disarm() {
	t.armed = false
}

// Armed reports whether the countdown is running.
func (t *IdleTimer) Armed() bool {
	return t.armed
}

// Fire reports whether the deadline has passed, disarming the timer so
// the expiry is delivered exactly once.
func (t *IdleTimer) Fire(now time.Time) bool {
	if !t.armed || now.Before(t.deadline) {
		return false
	}
	t.armed = false
	return true
}
