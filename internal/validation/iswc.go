package validation

import (
	"fmt"
	"regexp"
)

// iswcPattern matches T-#########-# (prefix, 9 digits, 1 check digit).
var iswcPattern = regexp.MustCompile(`^T-[0-9]{9}-[0-9]$`)

// IsValidISWCFormat reports whether iswc matches the ISWC shape. It does
// not verify the check digit.
func IsValidISWCFormat(iswc string) bool {
	return iswc != "" && iswcPattern.MatchString(iswc)
}

// ValidateISWC validates format and check digit of an ISWC. An empty value
// is valid.
func ValidateISWC(iswc string) []Error {
	if iswc == "" {
		return nil
	}
	if !IsValidISWCFormat(iswc) {
		return []Error{{
			Field:   "iswc",
			Code:    CodeInvalidISWCFormat,
			Message: "ISWC must be in format T-XXXXXXXXX-X",
			Details: map[string]any{"provided": iswc, "expectedFormat": "T-XXXXXXXXX-X"},
		}}
	}
	if iswcCheckDigit(iswc[2:11]) != int(iswc[12]-'0') {
		return []Error{{
			Field:   "iswc",
			Code:    CodeInvalidISWCChecksum,
			Message: "ISWC checksum is invalid",
			Details: map[string]any{"provided": iswc},
		}}
	}
	return nil
}

// GenerateISWC computes the check digit for a 9-digit base and returns the
// full T-#########-# code. Inverse of ValidateISWC's checksum step.
func GenerateISWC(base string) (string, error) {
	if len(base) != 9 || !isAllDigits(base) {
		return "", fmt.Errorf("iswc base must be 9 digits, got %q", base)
	}
	return fmt.Sprintf("T-%s-%d", base, iswcCheckDigit(base)), nil
}

// iswcCheckDigit weights digit i by (10 - i) and takes the sum mod 10.
// digits must be 9 ASCII digits.
func iswcCheckDigit(digits string) int {
	total := 0
	for i := 0; i < len(digits); i++ {
		total += int(digits[i]-'0') * (10 - i)
	}
	return total % 10
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
