package domain

import "time"

// SongwriterStatus defines the lifecycle states of a songwriter.
type SongwriterStatus string

const (
	SongwriterActive   SongwriterStatus = "active"
	SongwriterInactive SongwriterStatus = "inactive"
	SongwriterDeceased SongwriterStatus = "deceased"
)

// Songwriter is a publisher-scoped person record. (publisher, ipi) and
// (publisher, email) are unique per publisher, checked at transaction
// commit so that two songwriters can swap identifiers inside one
// transaction.
type Songwriter struct {
	SongwriterID string           `json:"songwriterID"`
	PublisherID  string           `json:"publisherID"`
	FirstName    string           `json:"firstName"`
	LastName     string           `json:"lastName"`
	StageName    *string          `json:"stageName,omitempty"`
	IPI          *string          `json:"ipi,omitempty"`  // uninterpreted industry identifier, 8-15 digits
	ISNI         *string          `json:"isni,omitempty"` // uninterpreted industry identifier, 16 digits
	Email        *string          `json:"email,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	BirthDate    *time.Time       `json:"birthDate,omitempty"`
	BirthCountry *string          `json:"birthCountry,omitempty"` // 2-letter country code
	Nationality  *string          `json:"nationality,omitempty"`  // 2-letter country code
	Status       SongwriterStatus `json:"status"`
	DeceasedDate *time.Time       `json:"deceasedDate,omitempty"` // set only when Status is deceased
	Biography    *string          `json:"biography,omitempty"`
	Website      *string          `json:"website,omitempty"`
	AuditFields
}

// FullName returns the display name used for duplicate scans.
func (s Songwriter) FullName() string {
	return s.FirstName + " " + s.LastName
}
