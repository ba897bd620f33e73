package proposal

import (
	"context"
	"fmt"
	"strings"

	proposalRepo "taskhive/database/repository/proposal"
	requestRepo "taskhive/database/repository/request"
	"taskhive/models"
	"taskhive/services/lifecycle"
	"taskhive/services/matching"
	"taskhive/services/notification"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultProposalService is the production ProposalService.
type DefaultProposalService struct {
	RequestRepo  requestRepo.RequestRepository
	ProposalRepo proposalRepo.ProposalRepository
	Notifier     notification.NotificationService
}

// Submit validates and persists a new pending proposal.
//
// The duplicate check runs twice on purpose: once here for a friendly error,
// and once in the store's unique index to close the race between two
// concurrent submissions from the same provider.
func (s *DefaultProposalService) Submit(ctx context.Context, p models.Proposal) (*models.Proposal, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	req, err := s.RequestRepo.GetByID(ctx, p.RequestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.RequestOpen {
		return nil, lifecycle.PreconditionFailedError{Reason: "proposals are only accepted while the request is open"}
	}

	exists, err := s.ProposalRepo.ExistsForProvider(ctx, p.RequestID, p.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing proposal: %w", err)
	}
	if exists {
		return nil, lifecycle.PreconditionFailedError{Reason: "provider has already submitted a proposal for this request"}
	}

	p.Status = models.ProposalPending
	id, err := s.ProposalRepo.Create(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, lifecycle.PreconditionFailedError{Reason: "provider has already submitted a proposal for this request"}
		}
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}

	created, err := s.ProposalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load created proposal %s: %w", id, err)
	}

	if err := s.Notifier.Send(ctx, req.BuyerID, notification.RoleUser, models.NotificationProposalReceived,
		"New proposal received",
		fmt.Sprintf("A provider submitted a proposal on %q.", req.Title),
		map[string]string{"requestId": req.ID, "proposalId": created.ID}); err != nil {
		zap.L().Warn("failed to notify buyer of new proposal",
			zap.String("requestId", req.ID), zap.Error(err))
	}
	return created, nil
}

// ListByRequest returns the proposals under a request, owner only.
func (s *DefaultProposalService) ListByRequest(ctx context.Context, requestID, buyerID string) ([]models.Proposal, error) {
	req, err := s.RequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.BuyerID != buyerID {
		return nil, lifecycle.PreconditionFailedError{Reason: "only the request owner can review its proposals"}
	}
	return s.ProposalRepo.ListByRequest(ctx, requestID)
}

// ListMine returns all proposals submitted by the provider.
func (s *DefaultProposalService) ListMine(ctx context.Context, providerID string) ([]models.Proposal, error) {
	return s.ProposalRepo.ListByProvider(ctx, providerID)
}

func validate(p models.Proposal) error {
	if p.ProviderID == "" {
		return matching.ValidationError{Field: "providerId", Reason: "missing"}
	}
	if p.RequestID == "" {
		return matching.ValidationError{Field: "requestId", Reason: "missing"}
	}
	if p.BidPrice <= 0 {
		return matching.ValidationError{Field: "bidPrice", Reason: "must be positive"}
	}
	if p.TimelineDays <= 0 {
		return matching.ValidationError{Field: "timelineDays", Reason: "must be at least one day"}
	}
	if strings.TrimSpace(p.CoverLetter) == "" {
		return matching.ValidationError{Field: "coverLetter", Reason: "missing"}
	}
	return nil
}
