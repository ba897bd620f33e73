package lifecycle

import (
	"context"

	"taskhive/models"
)

// AcceptanceResult reports what the accept workflow actually did.
type AcceptanceResult struct {
	Request        models.ServiceRequest `json:"request"`
	Accepted       models.Proposal       `json:"accepted"`
	Rejected       []models.Proposal     `json:"rejected"`
	ConversationID string                `json:"conversationId"`
}

// LifecycleService sequences the multi-step, non-transactional workflows over
// requests and proposals. The external store offers no cross-table
// transaction, so each step is an individual record write; AcceptProposal
// orders them so that the economically meaningful writes come first.
type LifecycleService interface {
	// AcceptProposal runs the full acceptance workflow for the buyer who owns
	// the request. Success is reported once the request itself is persisted
	// in_progress; conversation creation and notification dispatch after that
	// point are best-effort.
	AcceptProposal(ctx context.Context, requestID, proposalID, buyerID string) (*AcceptanceResult, error)
	// RejectProposal is the buyer's individual non-accept rejection: the
	// proposal becomes rejected, the request does not change status.
	RejectProposal(ctx context.Context, proposalID, buyerID string) error
	// WithdrawProposal lets the submitting provider withdraw a pending bid.
	WithdrawProposal(ctx context.Context, proposalID, providerID string) error
	// CancelRequest cancels an open or in-progress request.
	CancelRequest(ctx context.Context, requestID, buyerID string) error
	// CompleteRequest marks an in-progress request completed.
	CompleteRequest(ctx context.Context, requestID, buyerID string) error
	// ReconcileStrayProposals rejects pending proposals left behind by
	// partially failed acceptance runs. Returns how many were repaired.
	ReconcileStrayProposals(ctx context.Context) (int, error)
}
