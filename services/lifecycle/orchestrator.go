package lifecycle

import (
	"context"
	"fmt"

	conversationRepo "taskhive/database/repository/conversation"
	proposalRepo "taskhive/database/repository/proposal"
	requestRepo "taskhive/database/repository/request"
	"taskhive/models"
	"taskhive/services/notification"

	"go.uber.org/zap"
)

// DefaultLifecycleService is the production LifecycleService.
type DefaultLifecycleService struct {
	RequestRepo      requestRepo.RequestRepository
	ProposalRepo     proposalRepo.ProposalRepository
	ConversationRepo conversationRepo.ConversationRepository
	Notifier         notification.NotificationService
}

// AcceptProposal executes the acceptance workflow as an ordered sequence of
// single-record writes:
//
//  1. validate preconditions in memory — fail fast, nothing persisted
//  2. persist the chosen proposal accepted (critical)
//  3. persist every other pending proposal rejected (best-effort)
//  4. persist the request in_progress (critical; success reported after this)
//  5. conversation lookup-before-insert (best-effort)
//  6. dispatch notifications (best-effort)
//
// An error before step 2 means no persistent write happened and the call is
// safe to retry in full. An error from step 4 leaves an accepted proposal on
// an open request; the caller must not blindly retry, the reconciliation
// sweep picks up the pieces instead.
func (s *DefaultLifecycleService) AcceptProposal(ctx context.Context, requestID, proposalID, buyerID string) (*AcceptanceResult, error) {
	logger := zap.L()

	req, err := s.RequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load request %s: %w", requestID, err)
	}
	if req.BuyerID != buyerID {
		return nil, PreconditionFailedError{Reason: "only the request owner can accept a proposal"}
	}

	proposals, err := s.ProposalRepo.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load proposals for request %s: %w", requestID, err)
	}

	var chosen *models.Proposal
	siblings := make([]*models.Proposal, 0, len(proposals))
	for i := range proposals {
		if proposals[i].ID == proposalID {
			chosen = &proposals[i]
		} else {
			siblings = append(siblings, &proposals[i])
		}
	}
	if chosen == nil {
		return nil, proposalRepo.ErrNotFound
	}

	wasPending := make(map[string]bool, len(siblings))
	for _, sib := range siblings {
		wasPending[sib.ID] = sib.Status == models.ProposalPending
	}

	// Step 1: the whole transition is validated and applied in memory first,
	// so a precondition failure leaves no partial work behind.
	if err := AcceptProposal(req, chosen, siblings); err != nil {
		return nil, err
	}

	// Step 2: the accepted proposal is the first persistent write.
	if err := s.ProposalRepo.UpdateStatus(ctx, chosen.ID, models.ProposalAccepted); err != nil {
		return nil, fmt.Errorf("failed to persist accepted proposal %s: %w", chosen.ID, err)
	}

	// Step 3: competing proposals, best-effort. A partial failure here leaves
	// stray pending proposals behind; they are logged and later repaired by
	// the reconciliation sweep, not surfaced to the buyer.
	rejected := make([]models.Proposal, 0, len(siblings))
	for _, sib := range siblings {
		if !wasPending[sib.ID] {
			continue
		}
		if err := s.ProposalRepo.UpdateStatus(ctx, sib.ID, models.ProposalRejected); err != nil {
			logger.Error("partial workflow failure: competing proposal not rejected",
				zap.String("requestId", requestID),
				zap.String("proposalId", sib.ID),
				zap.Error(err))
			continue
		}
		rejected = append(rejected, *sib)
	}

	// Step 4: the request write completes the critical section.
	if err := s.RequestRepo.UpdateStatus(ctx, requestID, models.RequestInProgress); err != nil {
		logger.Error("acceptance interrupted after proposal write; request left open",
			zap.String("requestId", requestID),
			zap.String("proposalId", chosen.ID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to persist request %s in_progress: %w", requestID, err)
	}

	// Steps 5 and 6 run after success is already determined: their failures
	// are logged, never surfaced, because the economically meaningful state
	// (who won the job) is correct at this point.
	convID := s.ensureConversation(ctx, *req, chosen.ProviderID)
	s.notifyAcceptance(ctx, *req, *chosen, rejected)

	return &AcceptanceResult{
		Request:        *req,
		Accepted:       *chosen,
		Rejected:       rejected,
		ConversationID: convID,
	}, nil
}

// RejectProposal is the buyer's individual rejection: validate pending,
// persist rejected, one notification. The request status never changes.
func (s *DefaultLifecycleService) RejectProposal(ctx context.Context, proposalID, buyerID string) error {
	prop, err := s.ProposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return fmt.Errorf("failed to load proposal %s: %w", proposalID, err)
	}
	req, err := s.RequestRepo.GetByID(ctx, prop.RequestID)
	if err != nil {
		return fmt.Errorf("failed to load request %s: %w", prop.RequestID, err)
	}
	if req.BuyerID != buyerID {
		return PreconditionFailedError{Reason: "only the request owner can reject a proposal"}
	}

	if err := TransitionProposal(prop, models.ProposalRejected); err != nil {
		return err
	}
	if err := s.ProposalRepo.UpdateStatus(ctx, prop.ID, models.ProposalRejected); err != nil {
		return fmt.Errorf("failed to persist rejected proposal %s: %w", prop.ID, err)
	}

	s.send(ctx, prop.ProviderID, notification.RoleProvider, models.NotificationProposalRejected,
		"Proposal not selected",
		fmt.Sprintf("Your proposal on %q was not selected.", req.Title),
		map[string]string{"requestId": req.ID, "proposalId": prop.ID})
	return nil
}

// WithdrawProposal lets the submitting provider pull a pending bid.
func (s *DefaultLifecycleService) WithdrawProposal(ctx context.Context, proposalID, providerID string) error {
	prop, err := s.ProposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return fmt.Errorf("failed to load proposal %s: %w", proposalID, err)
	}
	if prop.ProviderID != providerID {
		return PreconditionFailedError{Reason: "only the submitting provider can withdraw a proposal"}
	}

	if err := TransitionProposal(prop, models.ProposalWithdrawn); err != nil {
		return err
	}
	if err := s.ProposalRepo.UpdateStatus(ctx, prop.ID, models.ProposalWithdrawn); err != nil {
		return fmt.Errorf("failed to persist withdrawn proposal %s: %w", prop.ID, err)
	}
	return nil
}

// CancelRequest cancels an open or in-progress request.
func (s *DefaultLifecycleService) CancelRequest(ctx context.Context, requestID, buyerID string) error {
	return s.transitionRequest(ctx, requestID, buyerID, models.RequestCancelled)
}

// CompleteRequest marks an in-progress request completed.
func (s *DefaultLifecycleService) CompleteRequest(ctx context.Context, requestID, buyerID string) error {
	return s.transitionRequest(ctx, requestID, buyerID, models.RequestCompleted)
}

func (s *DefaultLifecycleService) transitionRequest(ctx context.Context, requestID, buyerID string, to models.RequestStatus) error {
	req, err := s.RequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to load request %s: %w", requestID, err)
	}
	if req.BuyerID != buyerID {
		return PreconditionFailedError{Reason: "only the request owner can change its status"}
	}
	if err := TransitionRequest(req, to); err != nil {
		return err
	}
	if err := s.RequestRepo.UpdateStatus(ctx, requestID, to); err != nil {
		return fmt.Errorf("failed to persist request %s %s: %w", requestID, to, err)
	}
	return nil
}

// ReconcileStrayProposals sweeps in-progress requests for proposals that a
// partially failed acceptance run left pending, and rejects them. Safe to run
// repeatedly: the recipient computation and the status writes are idempotent.
func (s *DefaultLifecycleService) ReconcileStrayProposals(ctx context.Context) (int, error) {
	logger := zap.L()

	requests, err := s.RequestRepo.List(ctx, requestRepo.RequestQuery{
		Statuses: []models.RequestStatus{models.RequestInProgress},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list in-progress requests: %w", err)
	}

	repaired := 0
	for _, req := range requests {
		strays, err := s.ProposalRepo.ListByRequestAndStatus(ctx, req.ID, models.ProposalPending)
		if err != nil {
			logger.Error("reconcile: failed to list pending proposals",
				zap.String("requestId", req.ID), zap.Error(err))
			continue
		}
		for _, stray := range strays {
			if err := s.ProposalRepo.UpdateStatus(ctx, stray.ID, models.ProposalRejected); err != nil {
				logger.Error("reconcile: failed to reject stray proposal",
					zap.String("proposalId", stray.ID), zap.Error(err))
				continue
			}
			repaired++
			s.send(ctx, stray.ProviderID, notification.RoleProvider, models.NotificationProposalRejected,
				"Proposal not selected",
				fmt.Sprintf("Your proposal on %q was not selected.", req.Title),
				map[string]string{"requestId": req.ID, "proposalId": stray.ID})
		}
	}
	return repaired, nil
}

// ensureConversation creates the buyer/provider conversation for the request,
// reusing an existing one instead of duplicating (lookup-before-insert).
func (s *DefaultLifecycleService) ensureConversation(ctx context.Context, req models.ServiceRequest, providerID string) string {
	existing, err := s.ConversationRepo.FindByRequestAndProvider(ctx, req.ID, providerID)
	if err == nil {
		return existing.ID
	}
	if err != conversationRepo.ErrNotFound {
		zap.L().Error("partial workflow failure: conversation lookup failed",
			zap.String("requestId", req.ID), zap.Error(err))
		return ""
	}

	id, err := s.ConversationRepo.Create(ctx, models.Conversation{
		RequestID:  req.ID,
		BuyerID:    req.BuyerID,
		ProviderID: providerID,
	})
	if err != nil {
		zap.L().Error("partial workflow failure: conversation not created",
			zap.String("requestId", req.ID), zap.Error(err))
		return ""
	}
	return id
}

func (s *DefaultLifecycleService) notifyAcceptance(ctx context.Context, req models.ServiceRequest, accepted models.Proposal, rejected []models.Proposal) {
	s.send(ctx, accepted.ProviderID, notification.RoleProvider, models.NotificationProposalAccepted,
		"Proposal accepted",
		fmt.Sprintf("Your proposal on %q was accepted. You can now message the buyer.", req.Title),
		map[string]string{"requestId": req.ID, "proposalId": accepted.ID})

	for _, rej := range rejected {
		s.send(ctx, rej.ProviderID, notification.RoleProvider, models.NotificationProposalRejected,
			"Proposal not selected",
			fmt.Sprintf("Your proposal on %q was not selected.", req.Title),
			map[string]string{"requestId": req.ID, "proposalId": rej.ID})
	}
}

// send dispatches one notification, logging instead of propagating failure.
func (s *DefaultLifecycleService) send(ctx context.Context, recipientID, role, typ, title, body string, payload map[string]string) {
	if err := s.Notifier.Send(ctx, recipientID, role, typ, title, body, payload); err != nil {
		zap.L().Warn("notification dispatch failed",
			zap.String("recipientId", recipientID),
			zap.String("type", typ),
			zap.Error(err))
	}
}
