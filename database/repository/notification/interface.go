package notificationRepo

import (
	"context"
	"errors"

	"taskhive/database"
	"taskhive/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no notification matches the query.
var ErrNotFound = errors.New("notification not found")

// NotificationRepository defines data access for notifications.
// Notifications are append-only: Create and MarkRead are the only writes.
type NotificationRepository interface {
	// Create inserts a new notification record and returns its ID.
	Create(ctx context.Context, n models.Notification) (string, error)
	// ListByRecipient returns a recipient's notifications, newest first.
	ListByRecipient(ctx context.Context, recipientID string, limit int64) ([]models.Notification, error)
	// MarkRead flips the read flag on one notification.
	MarkRead(ctx context.Context, id string) error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo returns a NotificationRepository backed by MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	return &mongoNotificationRepo{coll: database.DB().Collection("notifications")}
}
