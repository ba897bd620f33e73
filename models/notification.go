package models

import "time"

// Notification types emitted by the engine.
const (
	NotificationNewRequest       = "new_request"
	NotificationProposalReceived = "proposal_received"
	NotificationProposalAccepted = "proposal_accepted"
	NotificationProposalRejected = "proposal_rejected"
)

// Notification is append-only; only the Read flag is ever mutated.
type Notification struct {
	ID          string            `bson:"id" json:"id"`
	RecipientID string            `bson:"recipientId" json:"recipientId"`
	Role        string            `bson:"role" json:"role"` // "user" or "provider"
	Type        string            `bson:"type" json:"type"`
	Title       string            `bson:"title" json:"title"`
	Body        string            `bson:"body" json:"body"`
	Payload     map[string]string `bson:"payload,omitempty" json:"payload,omitempty"`
	Read        bool              `bson:"read" json:"read"`
	CreatedAt   time.Time         `bson:"createdAt" json:"createdAt"`
}
