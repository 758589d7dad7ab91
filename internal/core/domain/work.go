package domain

import "github.com/shopspring/decimal"

// RegistrationStatus tracks a work through its registration lifecycle:
// draft -> pending -> registered -> published -> archived.
type RegistrationStatus string

const (
	RegistrationDraft      RegistrationStatus = "draft"
	RegistrationPending    RegistrationStatus = "pending"
	RegistrationRegistered RegistrationStatus = "registered"
	RegistrationPublished  RegistrationStatus = "published"
	RegistrationArchived   RegistrationStatus = "archived"
)

// WriterRole defines the role a songwriter holds on a work. A songwriter
// may hold several distinct roles on one work but never the same role
// twice.
type WriterRole string

const (
	RoleComposer         WriterRole = "composer"
	RoleLyricist         WriterRole = "lyricist"
	RoleComposerLyricist WriterRole = "composer_lyricist"
)

// Work is a publisher-scoped musical composition. (publisher, iswc) is
// unique per publisher, checked at commit. OriginalWorkID links a
// derivative to the work it was derived from; chains may form a DAG.
type Work struct {
	WorkID             string             `json:"workID"`
	PublisherID        string             `json:"publisherID"`
	Title              string             `json:"title"`
	ISWC               *string            `json:"iswc,omitempty"` // T-#########-#
	AlternateTitles    []string           `json:"alternateTitles,omitempty"`
	Genre              *string            `json:"genre,omitempty"`
	Language           *string            `json:"language,omitempty"` // ISO 639-1, optional region suffix
	Duration           *int               `json:"duration,omitempty"` // seconds
	Tempo              *int               `json:"tempo,omitempty"`    // BPM
	RegistrationStatus RegistrationStatus `json:"registrationStatus"`
	IsInstrumental     bool               `json:"isInstrumental"`
	Description        *string            `json:"description,omitempty"`
	Tags               []string           `json:"tags,omitempty"`
	OriginalWorkID     *string            `json:"originalWorkID,omitempty"`
	AuditFields
}

// WorkWriter links a work to a songwriter with a role and percentage
// shares. (publisher, work, songwriter, role) is unique per publisher,
// checked at commit.
type WorkWriter struct {
	WorkWriterID           string           `json:"workWriterID"`
	PublisherID            string           `json:"publisherID"`
	WorkID                 string           `json:"workID"`
	SongwriterID           string           `json:"songwriterID"`
	Role                   WriterRole       `json:"role"`
	ContributionPercentage *decimal.Decimal `json:"contributionPercentage,omitempty"` // 0-100
	PublishingShare        *decimal.Decimal `json:"publishingShare,omitempty"`        // 0-100
	WriterShare            *decimal.Decimal `json:"writerShare,omitempty"`            // 0-100
	IsPrimary              bool             `json:"isPrimary"`
	CreditName             *string          `json:"creditName,omitempty"`
	AuditFields
}
