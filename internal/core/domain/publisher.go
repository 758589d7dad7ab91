package domain

// PublisherStatus defines the lifecycle states of a publisher account.
type PublisherStatus string

const (
	PublisherActive    PublisherStatus = "active"
	PublisherSuspended PublisherStatus = "suspended"
	PublisherArchived  PublisherStatus = "archived"
	PublisherTrial     PublisherStatus = "trial"
)

// PlanType defines the subscription plan of a publisher.
type PlanType string

const (
	PlanFree         PlanType = "free"
	PlanStarter      PlanType = "starter"
	PlanProfessional PlanType = "professional"
	PlanEnterprise   PlanType = "enterprise"
)

// Publisher is the top-level isolation boundary. Every catalog entity
// belongs to exactly one publisher, and row-level security restricts all
// storage access to the publisher of the current unit of work.
type Publisher struct {
	PublisherID string          `json:"publisherID"`
	Name        string          `json:"name"`
	Subdomain   string          `json:"subdomain"` // globally unique, lowercase alnum+hyphen
	Status      PublisherStatus `json:"status"`
	PlanType    PlanType        `json:"planType"`
	Settings    map[string]any  `json:"settings"`
	AuditFields
}
