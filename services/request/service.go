package request

import (
	"context"
	"fmt"
	"strings"

	categoryRepo "taskhive/database/repository/category"
	requestRepo "taskhive/database/repository/request"
	"taskhive/models"
	"taskhive/services/lifecycle"
	"taskhive/services/matching"

	"go.uber.org/zap"
)

// DefaultRequestService is the production RequestService.
type DefaultRequestService struct {
	RequestRepo  requestRepo.RequestRepository
	CategoryRepo categoryRepo.CategoryRepository
	// EnqueueFanout queues the new-request notification fan-out. Nil disables
	// fan-out entirely.
	EnqueueFanout func(requestID string) error
}

// Create validates and persists a new request, then queues the fan-out.
func (s *DefaultRequestService) Create(ctx context.Context, req models.ServiceRequest) (*models.ServiceRequest, error) {
	if err := s.validate(ctx, &req); err != nil {
		return nil, err
	}
	req.Status = models.RequestOpen

	id, err := s.RequestRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	created, err := s.RequestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load created request %s: %w", id, err)
	}

	if s.EnqueueFanout != nil {
		if err := s.EnqueueFanout(id); err != nil {
			zap.L().Warn("failed to queue request fan-out",
				zap.String("requestId", id), zap.Error(err))
		}
	}
	return created, nil
}

// Get retrieves a single request.
func (s *DefaultRequestService) Get(ctx context.Context, id string) (*models.ServiceRequest, error) {
	return s.RequestRepo.GetByID(ctx, id)
}

// Update edits the mutable fields of an open request owned by the buyer.
func (s *DefaultRequestService) Update(ctx context.Context, req models.ServiceRequest, buyerID string) (*models.ServiceRequest, error) {
	existing, err := s.RequestRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if existing.BuyerID != buyerID {
		return nil, lifecycle.PreconditionFailedError{Reason: "only the request owner can edit it"}
	}
	if existing.Status != models.RequestOpen {
		return nil, lifecycle.PreconditionFailedError{Reason: "a request can only be edited while open"}
	}

	req.BuyerID = existing.BuyerID
	if err := s.validate(ctx, &req); err != nil {
		return nil, err
	}
	if err := s.RequestRepo.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to update request %s: %w", req.ID, err)
	}
	return s.RequestRepo.GetByID(ctx, req.ID)
}

// Browse returns open requests matching the query, newest first.
func (s *DefaultRequestService) Browse(ctx context.Context, q BrowseQuery) ([]models.ServiceRequest, error) {
	requests, err := s.RequestRepo.List(ctx, requestRepo.RequestQuery{
		Statuses:   []models.RequestStatus{models.RequestOpen},
		CategoryID: q.CategoryID,
		Limit:      q.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list open requests: %w", err)
	}
	if q.Keyword == "" {
		return requests, nil
	}

	filtered := make([]models.ServiceRequest, 0, len(requests))
	for _, req := range requests {
		if matching.MatchesKeyword(req, q.Keyword) {
			filtered = append(filtered, req)
		}
	}
	return filtered, nil
}

// ListMine returns all requests created by the buyer, newest first.
func (s *DefaultRequestService) ListMine(ctx context.Context, buyerID string) ([]models.ServiceRequest, error) {
	return s.RequestRepo.List(ctx, requestRepo.RequestQuery{BuyerID: buyerID})
}

func (s *DefaultRequestService) validate(ctx context.Context, req *models.ServiceRequest) error {
	if req.BuyerID == "" {
		return matching.ValidationError{Field: "buyerId", Reason: "missing"}
	}
	if strings.TrimSpace(req.Title) == "" {
		return matching.ValidationError{Field: "title", Reason: "missing"}
	}
	if req.CategoryID == "" {
		return matching.ValidationError{Field: "categoryId", Reason: "missing"}
	}
	if req.Budget.Min < 0 {
		return matching.ValidationError{Field: "budget", Reason: "min must not be negative"}
	}
	if req.Budget.Max > 0 && req.Budget.Min > req.Budget.Max {
		return matching.ValidationError{Field: "budget", Reason: "min exceeds max"}
	}
	if req.Location != nil {
		if err := matching.ValidateCoordinate(req.Location.Coordinate()); err != nil {
			return err
		}
	}

	if _, err := s.CategoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		if err == categoryRepo.ErrNotFound {
			return matching.ValidationError{Field: "categoryId", Reason: "unknown category"}
		}
		return fmt.Errorf("failed to look up category %s: %w", req.CategoryID, err)
	}
	return nil
}
