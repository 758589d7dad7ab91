package validation

import "regexp"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const maxEmailLength = 255

// ValidateEmail validates an email address. Format and length are checked
// independently, so both errors can be reported for one value. An empty
// value is valid.
func ValidateEmail(email string) []Error {
	if email == "" {
		return nil
	}
	var errs []Error
	if !emailPattern.MatchString(email) {
		errs = append(errs, Error{
			Field:   "email",
			Code:    CodeInvalidEmailFormat,
			Message: "Invalid email address format",
			Details: map[string]any{"provided": email},
		})
	}
	if len(email) > maxEmailLength {
		errs = append(errs, Error{
			Field:   "email",
			Code:    CodeEmailTooLong,
			Message: "Email address too long (max 255 characters)",
			Details: map[string]any{"providedLength": len(email)},
		})
	}
	return errs
}
