package proposalRepo

import (
	"context"
	"errors"
	"log"

	"taskhive/database"
	"taskhive/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no proposal matches the query.
var ErrNotFound = errors.New("proposal not found")

// ProposalRepository defines data access for proposals.
type ProposalRepository interface {
	// GetByID retrieves a proposal by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Proposal, error)
	// Create inserts a new proposal record and returns its ID.
	Create(ctx context.Context, p models.Proposal) (string, error)
	// ListByRequest returns all proposals under a request.
	ListByRequest(ctx context.Context, requestID string) ([]models.Proposal, error)
	// ListByRequestAndStatus returns proposals under a request in a given status.
	ListByRequestAndStatus(ctx context.Context, requestID string, status models.ProposalStatus) ([]models.Proposal, error)
	// ListByProvider returns all proposals submitted by a provider.
	ListByProvider(ctx context.Context, providerID string) ([]models.Proposal, error)
	// UpdateStatus performs a single-record status write.
	UpdateStatus(ctx context.Context, id string, status models.ProposalStatus) error
	// ExistsForProvider reports whether the provider already bid on the request.
	ExistsForProvider(ctx context.Context, requestID, providerID string) (bool, error)
}

type mongoProposalRepo struct {
	coll *mongo.Collection
}

// NewMongoProposalRepo returns a ProposalRepository backed by MongoDB.
func NewMongoProposalRepo() ProposalRepository {
	repo := &mongoProposalRepo{coll: database.DB().Collection("proposals")}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("proposalRepo: %v", err)
	}
	return repo
}
