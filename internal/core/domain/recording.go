package domain

// RecordingType classifies how a recording was produced.
type RecordingType string

const (
	RecordingStudio    RecordingType = "studio"
	RecordingLive      RecordingType = "live"
	RecordingDemo      RecordingType = "demo"
	RecordingRemix     RecordingType = "remix"
	RecordingRemaster  RecordingType = "remaster"
	RecordingAlternate RecordingType = "alternate"
	RecordingAcoustic  RecordingType = "acoustic"
)

// RecordingStatus defines the lifecycle states of a recording. Recordings
// are soft-deleted: status moves to deleted, the row stays.
type RecordingStatus string

const (
	RecordingActive   RecordingStatus = "active"
	RecordingArchived RecordingStatus = "archived"
	RecordingDeleted  RecordingStatus = "deleted"
)

// Recording is a publisher-scoped master or derivative audio record of
// exactly one work. (publisher, isrc) is unique per publisher, checked at
// commit.
type Recording struct {
	RecordingID     string          `json:"recordingID"`
	PublisherID     string          `json:"publisherID"`
	WorkID          string          `json:"workID"`
	Title           string          `json:"title"`
	ISRC            *string         `json:"isrc,omitempty"` // 2 letters + 3 alnum + 7 digits
	ArtistName      string          `json:"artistName"`
	AlbumTitle      *string         `json:"albumTitle,omitempty"`
	TrackNumber     *int            `json:"trackNumber,omitempty"`
	DiscNumber      *int            `json:"discNumber,omitempty"`
	DurationMs      *int            `json:"durationMs,omitempty"`
	FileFormat      *string         `json:"fileFormat,omitempty"`
	RecordingType   RecordingType   `json:"recordingType"`
	Status          RecordingStatus `json:"status"`
	IsMaster        bool            `json:"isMaster"`
	ExplicitContent bool            `json:"explicitContent"`
	Description     *string         `json:"description,omitempty"`
	AuditFields
}

// RecordingContributor credits a free-text contributor name (not a
// songwriter reference) on a recording. (publisher, recording, name, role,
// instrument) is unique per publisher, checked at commit.
type RecordingContributor struct {
	ContributorID   string  `json:"contributorID"`
	PublisherID     string  `json:"publisherID"`
	RecordingID     string  `json:"recordingID"`
	ContributorName string  `json:"contributorName"`
	Role            string  `json:"role"`
	Instrument      *string `json:"instrument,omitempty"`
	IsPrimary       bool    `json:"isPrimary"`
	CreditName      *string `json:"creditName,omitempty"`
	AuditFields
}
