package notification

import (
	"context"

	"taskhive/models"
)

// Recipient roles.
const (
	RoleUser     = "user"
	RoleProvider = "provider"
)

// NotificationService persists notifications and best-effort pushes them.
// The engine treats Send failures as non-fatal to the surrounding workflow:
// delivery is not a correctness requirement of the lifecycle.
type NotificationService interface {
	// Send appends a notification record for the recipient and attempts an
	// FCM push. The push side effect never fails the call.
	Send(ctx context.Context, recipientID, role, typ, title, body string, payload map[string]string) error
	// ListForRecipient returns a recipient's notifications, newest first.
	ListForRecipient(ctx context.Context, recipientID string, limit int64) ([]models.Notification, error)
	// MarkRead flips the read flag, the only mutation notifications allow.
	MarkRead(ctx context.Context, id string) error
}
