package domain

import "time"

// User represents an authenticated actor of the application. Users are
// platform-level, not publisher-scoped: the same account may operate on
// any publisher it presents a context for.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
