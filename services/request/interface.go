package request

import (
	"context"

	"taskhive/models"
)

// BrowseQuery narrows the public request feed.
type BrowseQuery struct {
	CategoryID string
	// Keyword is matched case-insensitively against title, description,
	// city and address.
	Keyword string
	Limit   int64
}

// RequestService manages buyer-side request operations.
type RequestService interface {
	// Create validates and persists a new request, then queues the
	// notification fan-out. The fan-out is best-effort: a queueing failure
	// never fails the creation.
	Create(ctx context.Context, req models.ServiceRequest) (*models.ServiceRequest, error)
	// Get retrieves a single request.
	Get(ctx context.Context, id string) (*models.ServiceRequest, error)
	// Update edits the mutable fields of a request. Only the owner may edit,
	// and only while the request is still open.
	Update(ctx context.Context, req models.ServiceRequest, buyerID string) (*models.ServiceRequest, error)
	// Browse returns open requests for the public feed, newest first.
	Browse(ctx context.Context, q BrowseQuery) ([]models.ServiceRequest, error)
	// ListMine returns all requests created by the buyer, newest first.
	ListMine(ctx context.Context, buyerID string) ([]models.ServiceRequest, error)
}
