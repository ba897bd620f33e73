package conversationRepo

import (
	"context"
	"errors"

	"taskhive/database"
	"taskhive/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no conversation matches the query.
var ErrNotFound = errors.New("conversation not found")

// ConversationRepository defines data access for conversations.
type ConversationRepository interface {
	// FindByRequestAndProvider returns the conversation for a (request, provider)
	// pair, or ErrNotFound.
	FindByRequestAndProvider(ctx context.Context, requestID, providerID string) (*models.Conversation, error)
	// Create inserts a new conversation record and returns its ID.
	Create(ctx context.Context, conv models.Conversation) (string, error)
	// ListByParticipant returns conversations where the given ID is buyer or provider.
	ListByParticipant(ctx context.Context, participantID string) ([]models.Conversation, error)
}

type mongoConversationRepo struct {
	coll *mongo.Collection
}

// NewMongoConversationRepo returns a ConversationRepository backed by MongoDB.
func NewMongoConversationRepo() ConversationRepository {
	return &mongoConversationRepo{coll: database.DB().Collection("conversations")}
}
