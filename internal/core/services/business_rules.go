package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/opusregistry/catalog_backend/internal/apperrors"
	"github.com/opusregistry/catalog_backend/internal/core/domain"
	"github.com/opusregistry/catalog_backend/internal/dto"
	"github.com/opusregistry/catalog_backend/internal/validation"
)

// Error codes for catalog business rules, reported alongside the
// identifier validator codes.
const (
	codeInvalidIPIFormat       = "INVALID_IPI_FORMAT"
	codeInvalidISNIFormat      = "INVALID_ISNI_FORMAT"
	codeDeceasedDateStatus     = "DECEASED_DATE_WITHOUT_STATUS"
	codeNoWriters              = "NO_WRITERS"
	codeMissingComposer        = "MISSING_COMPOSER"
	codeShareOutOfRange        = "SHARE_OUT_OF_RANGE"
	codeContributionExceeded   = "TOTAL_CONTRIBUTION_EXCEEDED"
	codeDuplicateWriterRole    = "DUPLICATE_WRITER_ROLE"
	codeFieldLocked            = "FIELD_LOCKED"
	codeUnknownOriginalWork    = "UNKNOWN_ORIGINAL_WORK"
)

// RuleError reports every business-rule and identifier finding collected
// for a request in one error. It unwraps to apperrors.ErrValidation so
// callers can branch on the sentinel, and handlers serialize Findings into
// the response body.
type RuleError struct {
	Findings []validation.Error
}

func (e *RuleError) Error() string {
	if len(e.Findings) == 1 {
		return "validation failed: " + e.Findings[0].Code
	}
	return fmt.Sprintf("validation failed with %d findings", len(e.Findings))
}

func (e *RuleError) Unwrap() error {
	return apperrors.ErrValidation
}

func newRuleError(findings []validation.Error) *RuleError {
	return &RuleError{Findings: findings}
}

var ipiSeparators = regexp.MustCompile(`[-. ]`)

// NormalizeIPI strips separator characters from an IPI number and reports
// whether the remainder is 8 to 15 digits. Hyphens, dots and spaces are
// tolerated on input; the stored form is digits only.
func NormalizeIPI(raw string) (string, bool) {
	cleaned := ipiSeparators.ReplaceAllString(raw, "")
	if len(cleaned) < 8 || len(cleaned) > 15 {
		return "", false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return cleaned, true
}

// isValidISNI reports whether s is exactly 16 digits.
func isValidISNI(s string) bool {
	if len(s) != 16 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// checkSongwriterIdentifiers validates IPI, ISNI, email, phone and the
// deceased consistency rule. All findings are collected; identifiers are
// normalized in place when valid.
func checkSongwriterIdentifiers(sw *domain.Songwriter) []validation.Error {
	var errs []validation.Error

	if sw.IPI != nil && *sw.IPI != "" {
		normalized, ok := NormalizeIPI(*sw.IPI)
		if !ok {
			errs = append(errs, validation.Error{
				Field:   "ipi",
				Code:    codeInvalidIPIFormat,
				Message: "IPI must be 8 to 15 digits",
			})
		} else {
			sw.IPI = &normalized
		}
	}

	if sw.ISNI != nil && *sw.ISNI != "" && !isValidISNI(*sw.ISNI) {
		errs = append(errs, validation.Error{
			Field:   "isni",
			Code:    codeInvalidISNIFormat,
			Message: "ISNI must be exactly 16 digits",
		})
	}

	if sw.Email != nil && *sw.Email != "" {
		errs = append(errs, validation.ValidateEmail(*sw.Email)...)
	}

	if sw.Phone != nil && *sw.Phone != "" {
		region := ""
		if sw.Nationality != nil {
			region = strings.ToUpper(*sw.Nationality)
		}
		errs = append(errs, validation.ValidatePhone(*sw.Phone, region)...)
	}

	if sw.DeceasedDate != nil && sw.Status != domain.SongwriterDeceased {
		errs = append(errs, validation.Error{
			Field:   "deceasedDate",
			Code:    codeDeceasedDateStatus,
			Message: "deceasedDate requires status deceased",
		})
	}

	return errs
}

var hundred = decimal.NewFromInt(100)

// checkWriterSet validates a work's writer credits as a whole: at least
// one writer, at least one composing role, per-share bounds, a total
// contribution cap of 100 and no repeated songwriter-role pair.
func checkWriterSet(writers []dto.WorkWriterInput) []validation.Error {
	var errs []validation.Error

	if len(writers) == 0 {
		return append(errs, validation.Error{
			Field:   "writers",
			Code:    codeNoWriters,
			Message: "a work requires at least one writer",
		})
	}

	hasComposer := false
	totalContribution := decimal.Zero
	seen := make(map[string]struct{}, len(writers))

	for _, w := range writers {
		if w.Role == domain.RoleComposer || w.Role == domain.RoleComposerLyricist {
			hasComposer = true
		}

		for field, share := range map[string]*decimal.Decimal{
			"contributionPercentage": w.ContributionPercentage,
			"publishingShare":        w.PublishingShare,
			"writerShare":            w.WriterShare,
		} {
			if share == nil {
				continue
			}
			if share.IsNegative() || share.GreaterThan(hundred) {
				errs = append(errs, validation.Error{
					Field:   field,
					Code:    codeShareOutOfRange,
					Message: "shares must be between 0 and 100",
					Details: map[string]any{"songwriterID": w.SongwriterID},
				})
			}
		}

		if w.ContributionPercentage != nil {
			totalContribution = totalContribution.Add(*w.ContributionPercentage)
		}

		key := w.SongwriterID + "/" + string(w.Role)
		if _, dup := seen[key]; dup {
			errs = append(errs, validation.Error{
				Field:   "writers",
				Code:    codeDuplicateWriterRole,
				Message: "a songwriter may hold a given role only once per work",
				Details: map[string]any{"songwriterID": w.SongwriterID, "role": string(w.Role)},
			})
		}
		seen[key] = struct{}{}
	}

	if !hasComposer {
		errs = append(errs, validation.Error{
			Field:   "writers",
			Code:    codeMissingComposer,
			Message: "a work requires at least one composer or composer_lyricist",
		})
	}

	if totalContribution.GreaterThan(hundred) {
		errs = append(errs, validation.Error{
			Field:   "writers",
			Code:    codeContributionExceeded,
			Message: "total contribution percentage may not exceed 100",
			Details: map[string]any{"total": totalContribution.String()},
		})
	}

	return errs
}

// workFieldsLocked reports whether a work's identity fields (title, ISWC,
// writer credits) may no longer change. They lock once the work reaches
// registered status and stay locked afterwards.
func workFieldsLocked(status domain.RegistrationStatus) bool {
	switch status {
	case domain.RegistrationRegistered, domain.RegistrationPublished, domain.RegistrationArchived:
		return true
	}
	return false
}

func lockedFieldError(field string) validation.Error {
	return validation.Error{
		Field:   field,
		Code:    codeFieldLocked,
		Message: field + " cannot change after registration",
	}
}
