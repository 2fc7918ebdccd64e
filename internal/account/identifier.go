package account

import "regexp"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail reports whether identifier looks like an email address (as
// opposed to a phone number). Checkout receipts require an email, so
// phone-number accounts must supply one separately.
func IsEmail(identifier string) bool {
	return emailRe.MatchString(identifier)
}
