package proposalRepo

import (
	"context"
	"time"

	"taskhive/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new proposal and returns its ID.
func (r *mongoProposalRepo) Create(ctx context.Context, p models.Proposal) (string, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = models.ProposalPending
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// GetByID returns a proposal by its ID.
func (r *mongoProposalRepo) GetByID(ctx context.Context, id string) (*models.Proposal, error) {
	var p models.Proposal
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByRequest returns all proposals under a request.
func (r *mongoProposalRepo) ListByRequest(ctx context.Context, requestID string) ([]models.Proposal, error) {
	return r.list(ctx, bson.M{"requestId": requestID})
}

// ListByRequestAndStatus returns proposals under a request in a given status.
func (r *mongoProposalRepo) ListByRequestAndStatus(ctx context.Context, requestID string, status models.ProposalStatus) ([]models.Proposal, error) {
	return r.list(ctx, bson.M{"requestId": requestID, "status": status})
}

// ListByProvider returns all proposals submitted by a provider.
func (r *mongoProposalRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Proposal, error) {
	return r.list(ctx, bson.M{"providerId": providerID})
}

func (r *mongoProposalRepo) list(ctx context.Context, filter bson.M) ([]models.Proposal, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var proposals []models.Proposal
	if err := cursor.All(ctx, &proposals); err != nil {
		return nil, err
	}
	return proposals, nil
}

// UpdateStatus performs a single-record status write.
func (r *mongoProposalRepo) UpdateStatus(ctx context.Context, id string, status models.ProposalStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ExistsForProvider reports whether the provider already bid on the request.
func (r *mongoProposalRepo) ExistsForProvider(ctx context.Context, requestID, providerID string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"requestId": requestID, "providerId": providerID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
