package validation

import (
	"regexp"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultDuplicateThreshold is the similarity score at or above which two
// titles/names are treated as potential duplicates.
const DefaultDuplicateThreshold = 0.85

var (
	punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// leading articles stripped during normalization
var articles = []string{"the ", "a ", "an "}

// SimilarityScore computes a similarity score in [0, 1] between two
// free-text strings. Both are normalized (lower-cased, one leading article
// stripped, punctuation removed, whitespace collapsed), then the maximum of
// several fuzzy metrics is taken so the score is robust to word reordering
// and partial overlap. This is a heuristic: results are candidates for
// human review, never automatic merge decisions.
func SimilarityScore(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	na := normalizeForMatch(a)
	nb := normalizeForMatch(b)

	best := fuzzy.Ratio(na, nb)
	if r := fuzzy.PartialRatio(na, nb); r > best {
		best = r
	}
	if r := fuzzy.TokenSortRatio(na, nb); r > best {
		best = r
	}
	if r := fuzzy.TokenSetRatio(na, nb); r > best {
		best = r
	}
	return float64(best) / 100.0
}

// IsPotentialDuplicate reports whether two strings score at or above the
// threshold.
func IsPotentialDuplicate(a, b string, threshold float64) bool {
	return SimilarityScore(a, b) >= threshold
}

func normalizeForMatch(text string) string {
	text = strings.ToLower(text)
	for _, article := range articles {
		if strings.HasPrefix(text, article) {
			text = text[len(article):]
			break
		}
	}
	text = punctuationPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
