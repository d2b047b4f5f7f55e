package validate

import (
	"regexp"
	"time"
)

// Signup field rules are fail-fast and ordered: emptiness is checked across
// all fields before any per-field format rule, and the first violated rule
// wins. Messages are the exact user-facing strings the API returns.

const (
	MsgEmptyFields   = "Input fields are empty!"
	MsgInvalidName   = "Invalid entry in the Name field!"
	MsgInvalidEmail  = "Invalid entry in the Email field!"
	MsgInvalidDate   = "Invalid Date of Birth entered!"
	MsgWeakPassword  = "Password entered is too short!"
	dateOfBirthLayout = "2006-01-02"
)

// The email rule is deliberately narrower than RFC 5322: word chars,
// hyphens and dots in the local part, dotted domain labels, TLD of 2-4.
var emailPattern = regexp.MustCompile(`^[\w-.]+@([\w-]+\.)+[\w-]{2,4}$`)

// SignupFields validates the four signup fields, which must arrive already
// trimmed of surrounding whitespace. It returns the message of the first
// violated rule, or "" when all pass. Pure: no side effects.
func SignupFields(name, email, password, dateOfBirth string) string {
	if name == "" || email == "" || password == "" || dateOfBirth == "" {
		return MsgEmptyFields
	}
	// validator's "alpha" is ^[a-zA-Z]+$; emptiness was handled above.
	if err := Var(name, "alpha"); err != nil {
		return MsgInvalidName
	}
	if !emailPattern.MatchString(email) {
		return MsgInvalidEmail
	}
	if _, err := time.Parse(dateOfBirthLayout, dateOfBirth); err != nil {
		return MsgInvalidDate
	}
	if err := Var(password, "min=8"); err != nil {
		return MsgWeakPassword
	}
	return ""
}

// ParseDateOfBirth parses an already-validated date-of-birth string.
func ParseDateOfBirth(dateOfBirth string) (time.Time, error) {
	return time.Parse(dateOfBirthLayout, dateOfBirth)
}
