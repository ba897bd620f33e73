package matching

import (
	"context"

	"taskhive/models"
)

// OpportunityQuery narrows a provider's opportunity feed.
type OpportunityQuery struct {
	// Statuses defaults to {open, in_progress} when empty.
	Statuses []models.RequestStatus
	// Keyword, when set, is matched case-insensitively against request
	// title, description, city and address.
	Keyword string
	// Limit caps the result size; 0 means no cap.
	Limit int
}

// MatchingService decides which requests a provider can see and which
// providers should hear about a new request.
type MatchingService interface {
	// FindOpportunities filters the open request pool down to what the given
	// provider is eligible for, newest first.
	FindOpportunities(ctx context.Context, provider models.Provider, q OpportunityQuery) ([]models.ServiceRequest, error)
	// FindEligibleRecipients computes the notification fan-out set for a new
	// request. A missing or unknown category yields an empty set, not an
	// error: a malformed request degrades to "no provider notified".
	FindEligibleRecipients(ctx context.Context, req models.ServiceRequest) ([]string, error)
}

// LocationResolver acquires an approximate location for a caller that has not
// stored one. Implementations may fail or be denied; callers treat a nil
// location as "radius filtering disabled".
type LocationResolver interface {
	Resolve(ctx context.Context, ip string) (*models.Location, error)
}
