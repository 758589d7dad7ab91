package validation

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// ValidatePhone validates a phone number, optionally using a default
// 2-letter region for numbers without a country prefix. An empty value is
// valid.
func ValidatePhone(phone, defaultRegion string) []Error {
	if phone == "" {
		return nil
	}
	parsed, err := phonenumbers.Parse(phone, defaultRegion)
	if err != nil {
		return []Error{{
			Field:   "phone",
			Code:    CodePhoneParseError,
			Message: fmt.Sprintf("Failed to parse phone number: %v", err),
			Details: map[string]any{"provided": phone, "error": err.Error()},
		}}
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return []Error{{
			Field:   "phone",
			Code:    CodeInvalidPhoneNumber,
			Message: "Invalid phone number format",
			Details: map[string]any{"provided": phone},
		}}
	}
	return nil
}

// FormatPhoneInternational normalizes a valid phone number to international
// format. The boolean reports whether the number could be parsed and is
// valid.
func FormatPhoneInternational(phone, defaultRegion string) (string, bool) {
	parsed, err := phonenumbers.Parse(phone, defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return "", false
	}
	return phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL), true
}
