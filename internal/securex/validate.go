package securex

import "regexp"

// usernamePattern: 3-20 characters, letters, digits and underscores only.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

var (
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasLower   = regexp.MustCompile(`[a-z]`)
	hasDigit   = regexp.MustCompile(`\d`)
	hasSpecial = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// ValidateUsername reports whether a username is acceptable for
// registration or provisioning. The store itself only requires
// non-empty uniqueness; this stricter rule is applied by the caller
// before the account is created.
func ValidateUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// ValidatePassword reports whether a password meets the strength rule:
// at least 8 characters with an upper-case letter, a lower-case
// letter, a digit and a special character.
func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return hasUpper.MatchString(password) &&
		hasLower.MatchString(password) &&
		hasDigit.MatchString(password) &&
		hasSpecial.MatchString(password)
}
