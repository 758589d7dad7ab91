package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// isrcPattern matches 2 letters + 3 alphanumeric + 7 digits.
var isrcPattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{3}[0-9]{7}$`)

// ISRCComponents is the decomposition of a valid ISRC.
type ISRCComponents struct {
	CountryCode    string // 2 letters
	RegistrantCode string // 3 alphanumerics
	Year           string // 2 digits
	Designation    string // 5 digits
}

// IsValidISRCFormat reports whether isrc matches the ISRC shape. Matching
// is case-insensitive: values are upper-cased before comparison.
func IsValidISRCFormat(isrc string) bool {
	return isrc != "" && isrcPattern.MatchString(strings.ToUpper(isrc))
}

// ValidateISRC validates the format of an ISRC and its leading country
// code. An empty value is valid.
//
// The country check only requires two alphabetic characters; it is not a
// lookup against a real ISO 3166-1 table. That matches the registration
// systems this service feeds, which accept reserved and historical prefixes.
func ValidateISRC(isrc string) []Error {
	if isrc == "" {
		return nil
	}
	upper := strings.ToUpper(isrc)
	if !isrcPattern.MatchString(upper) {
		return []Error{{
			Field:   "isrc",
			Code:    CodeInvalidISRCFormat,
			Message: "ISRC must be in format: 2 letters + 3 alphanumeric + 7 digits",
			Details: map[string]any{
				"provided":       isrc,
				"expectedFormat": "CCNNNYYYYYYY (Country + Registrant + Year + ID)",
			},
		}}
	}
	if country := upper[:2]; !isAllLetters(country) {
		return []Error{{
			Field:   "isrc",
			Code:    CodeInvalidISRCCountry,
			Message: fmt.Sprintf("Invalid country code in ISRC: %s", country),
			Details: map[string]any{"countryCode": country},
		}}
	}
	return nil
}

// ParseISRC decomposes an ISRC into country / registrant / year /
// designation. The input is upper-cased first.
func ParseISRC(isrc string) (ISRCComponents, error) {
	if !IsValidISRCFormat(isrc) {
		return ISRCComponents{}, fmt.Errorf("invalid isrc format: %q", isrc)
	}
	upper := strings.ToUpper(isrc)
	return ISRCComponents{
		CountryCode:    upper[:2],
		RegistrantCode: upper[2:5],
		Year:           upper[5:7],
		Designation:    upper[7:],
	}, nil
}

func isAllLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return len(s) > 0
}
