// Package validation implements the music-industry identifier validators
// (ISWC, ISRC, language, phone, email) and the fuzzy duplicate-detection
// heuristic. Validators are pure functions: each returns the full list of
// problems found rather than failing fast, and an absent value is always
// valid since whether a field is required is the caller's concern.
package validation

// Error codes reported by the validators.
const (
	CodeInvalidISWCFormat     = "INVALID_ISWC_FORMAT"
	CodeInvalidISWCChecksum   = "INVALID_ISWC_CHECKSUM"
	CodeInvalidISRCFormat     = "INVALID_ISRC_FORMAT"
	CodeInvalidISRCCountry    = "INVALID_ISRC_COUNTRY"
	CodeInvalidLanguageFormat = "INVALID_LANGUAGE_FORMAT"
	CodeUncommonLanguageCode  = "UNCOMMON_LANGUAGE_CODE"
	CodeInvalidPhoneNumber    = "INVALID_PHONE_NUMBER"
	CodePhoneParseError       = "PHONE_PARSE_ERROR"
	CodeInvalidEmailFormat    = "INVALID_EMAIL_FORMAT"
	CodeEmailTooLong          = "EMAIL_TOO_LONG"
)

// Error describes a single field-level validation finding.
type Error struct {
	Field   string         `json:"field"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Advisory reports whether the finding is a warning the caller may accept
// rather than a hard rejection. Advisory findings flag the value without
// invalidating it.
func (e Error) Advisory() bool {
	return e.Code == CodeUncommonLanguageCode
}

// HasBlocking reports whether errs contains at least one non-advisory
// finding.
func HasBlocking(errs []Error) bool {
	for _, e := range errs {
		if !e.Advisory() {
			return true
		}
	}
	return false
}
