package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// UpdatedAt is refreshed by a storage-layer trigger on every write; the
// value here reflects what the database last reported, never an
// application-side clock.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"` // UserID reference
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"` // UserID reference
}
