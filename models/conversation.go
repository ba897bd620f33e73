package models

import "time"

// Conversation links a buyer and an accepted provider on one request.
// Created exactly once per (request, accepted provider) pair, at acceptance time.
type Conversation struct {
	ID         string    `bson:"id" json:"id"`
	RequestID  string    `bson:"requestId" json:"requestId"`
	BuyerID    string    `bson:"buyerId" json:"buyerId"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
