package domain

// DuplicateMatchType describes which attribute triggered a duplicate
// candidate: a fuzzy similarity hit or an exact identifier match.
type DuplicateMatchType string

const (
	MatchTitle DuplicateMatchType = "title"
	MatchName  DuplicateMatchType = "name"
	MatchISWC  DuplicateMatchType = "iswc"
	MatchIPI   DuplicateMatchType = "ipi"
	MatchEmail DuplicateMatchType = "email"
)

// DuplicateMatch is one candidate from a duplicate scan. Matches are
// candidates for human review, never automatic merge decisions.
type DuplicateMatch struct {
	EntityID  string             `json:"entityID"`
	Display   string             `json:"display"` // title or full name of the existing entity
	Score     float64            `json:"score"`   // [0,1]; exact identifier matches score 1.0
	MatchType DuplicateMatchType `json:"matchType"`
}
