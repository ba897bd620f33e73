package notification

import (
	"context"
	"fmt"

	notificationRepo "taskhive/database/repository/notification"
	providerRepo "taskhive/database/repository/provider"
	userRepo "taskhive/database/repository/user"
	"taskhive/models"
	"taskhive/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo      notificationRepo.NotificationRepository
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
}

// Send persists the notification and attempts a push. Persistence failure is
// returned to the caller; push failure is logged and swallowed.
func (s *DefaultNotificationService) Send(ctx context.Context, recipientID, role, typ, title, body string, payload map[string]string) error {
	n := models.Notification{
		RecipientID: recipientID,
		Role:        role,
		Type:        typ,
		Title:       title,
		Body:        body,
		Payload:     payload,
	}
	if _, err := s.Repo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to persist notification for %s: %w", recipientID, err)
	}

	if err := s.push(ctx, recipientID, role, title, body, payload); err != nil {
		zap.L().Warn("push delivery failed",
			zap.String("recipientId", recipientID),
			zap.String("type", typ),
			zap.Error(err))
	}
	return nil
}

// ListForRecipient returns a recipient's notifications, newest first.
func (s *DefaultNotificationService) ListForRecipient(ctx context.Context, recipientID string, limit int64) ([]models.Notification, error) {
	return s.Repo.ListByRecipient(ctx, recipientID, limit)
}

// MarkRead flips the read flag on one notification.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, id string) error {
	return s.Repo.MarkRead(ctx, id)
}

// push looks up the recipient's FCM token and sends one message.
func (s *DefaultNotificationService) push(ctx context.Context, recipientID, role, title, body string, payload map[string]string) error {
	if utils.FCMClient == nil {
		return nil
	}

	token, err := s.fcmToken(ctx, recipientID, role)
	if err != nil {
		return err
	}
	if token == "" {
		return nil // no push target registered
	}

	if payload == nil {
		payload = map[string]string{}
	}
	if _, ok := payload["role"]; !ok {
		payload["role"] = role
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: payload,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) fcmToken(ctx context.Context, recipientID, role string) (string, error) {
	switch role {
	case RoleProvider:
		p, err := s.Providers.GetByID(ctx, recipientID)
		if err != nil {
			return "", fmt.Errorf("could not find provider %s: %w", recipientID, err)
		}
		return p.FCMToken, nil
	default:
		u, err := s.Users.GetByID(ctx, recipientID)
		if err != nil {
			return "", fmt.Errorf("could not find user %s: %w", recipientID, err)
		}
		return u.FCMToken, nil
	}
}
