package conversationRepo

import (
	"context"
	"time"

	"taskhive/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindByRequestAndProvider returns the conversation for the pair, or ErrNotFound.
func (r *mongoConversationRepo) FindByRequestAndProvider(ctx context.Context, requestID, providerID string) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.coll.FindOne(ctx, bson.M{"requestId": requestID, "providerId": providerID}).Decode(&conv)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// Create inserts a new conversation and returns its ID.
func (r *mongoConversationRepo) Create(ctx context.Context, conv models.Conversation) (string, error) {
	if conv.ID == "" {
		conv.ID = uuid.New().String()
	}
	conv.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, conv)
	if err != nil {
		return "", err
	}
	return conv.ID, nil
}

// ListByParticipant returns conversations where the given ID is buyer or provider.
func (r *mongoConversationRepo) ListByParticipant(ctx context.Context, participantID string) ([]models.Conversation, error) {
	filter := bson.M{"$or": []bson.M{
		{"buyerId": participantID},
		{"providerId": participantID},
	}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var convs []models.Conversation
	if err := cursor.All(ctx, &convs); err != nil {
		return nil, err
	}
	return convs, nil
}
