package proposal

import (
	"context"

	"taskhive/models"
)

// ProposalService manages provider bids on requests.
type ProposalService interface {
	// Submit validates and persists a new pending proposal, then notifies the
	// buyer (best-effort). One proposal per provider per request.
	Submit(ctx context.Context, p models.Proposal) (*models.Proposal, error)
	// ListByRequest returns the proposals under a request. Only the request
	// owner may review them.
	ListByRequest(ctx context.Context, requestID, buyerID string) ([]models.Proposal, error)
	// ListMine returns all proposals submitted by the provider.
	ListMine(ctx context.Context, providerID string) ([]models.Proposal, error)
}
