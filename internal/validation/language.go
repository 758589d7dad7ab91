package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// languagePattern matches an ISO 639-1 base code with an optional region
// suffix: "en" or "es-MX".
var languagePattern = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)

// commonLanguages holds the base codes that pass without an advisory
// finding. A syntactically valid code outside this set is flagged, not
// rejected.
var commonLanguages = map[string]struct{}{
	"en": {}, "es": {}, "fr": {}, "de": {}, "it": {}, "pt": {}, "ru": {},
	"zh": {}, "ja": {}, "ko": {}, "ar": {}, "hi": {}, "tr": {}, "pl": {},
	"nl": {}, "sv": {}, "da": {}, "no": {}, "fi": {}, "cs": {}, "hu": {},
	"ro": {}, "bg": {}, "hr": {}, "sk": {}, "sl": {}, "et": {}, "lv": {},
	"lt": {}, "mt": {},
}

// ValidateLanguage validates a language code. A malformed code is a hard
// error; an uncommon but well-formed base code yields an advisory finding
// only. An empty value is valid.
func ValidateLanguage(language string) []Error {
	if language == "" {
		return nil
	}
	if !languagePattern.MatchString(language) {
		return []Error{{
			Field:   "language",
			Code:    CodeInvalidLanguageFormat,
			Message: "Language must be valid ISO 639-1 code (e.g., 'en', 'es-MX')",
			Details: map[string]any{"provided": language},
		}}
	}
	base := strings.ToLower(strings.SplitN(language, "-", 2)[0])
	if _, ok := commonLanguages[base]; !ok {
		return []Error{{
			Field:   "language",
			Code:    CodeUncommonLanguageCode,
			Message: fmt.Sprintf("Uncommon language code: %s", base),
			Details: map[string]any{"provided": language, "baseLanguage": base},
		}}
	}
	return nil
}
