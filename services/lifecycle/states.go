package lifecycle

import "taskhive/models"

// Legal transitions. Absent target sets are terminal states.
var proposalTransitions = map[models.ProposalStatus][]models.ProposalStatus{
	models.ProposalPending: {models.ProposalAccepted, models.ProposalRejected, models.ProposalWithdrawn},
}

var requestTransitions = map[models.RequestStatus][]models.RequestStatus{
	models.RequestOpen:       {models.RequestInProgress, models.RequestCancelled},
	models.RequestInProgress: {models.RequestCompleted, models.RequestCancelled},
}

// CanProposalTransition reports whether the proposal machine allows from -> to.
func CanProposalTransition(from, to models.ProposalStatus) bool {
	for _, next := range proposalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanRequestTransition reports whether the request machine allows from -> to.
func CanRequestTransition(from, to models.RequestStatus) bool {
	for _, next := range requestTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionProposal moves a proposal to the target status, or returns an
// InvalidTransitionError leaving the status untouched.
func TransitionProposal(p *models.Proposal, to models.ProposalStatus) error {
	if !CanProposalTransition(p.Status, to) {
		return InvalidTransitionError{Entity: "proposal", From: string(p.Status), To: string(to)}
	}
	p.Status = to
	return nil
}

// TransitionRequest moves a request to the target status, or returns an
// InvalidTransitionError leaving the status untouched.
func TransitionRequest(r *models.ServiceRequest, to models.RequestStatus) error {
	if !CanRequestTransition(r.Status, to) {
		return InvalidTransitionError{Entity: "request", From: string(r.Status), To: string(to)}
	}
	r.Status = to
	return nil
}

// AcceptProposal performs the coupled model-level transition: the chosen
// proposal becomes accepted, every other pending sibling becomes rejected, and
// the request moves open -> in_progress. This is the only path that takes a
// request into in_progress, which keeps the invariant that a request is
// in_progress iff exactly one of its proposals is accepted.
//
// Persistence of each record is the orchestrator's job; this function only
// validates and mutates the in-memory models.
func AcceptProposal(req *models.ServiceRequest, chosen *models.Proposal, siblings []*models.Proposal) error {
	if chosen.RequestID != req.ID {
		return PreconditionFailedError{Reason: "proposal does not belong to this request"}
	}
	if req.Status != models.RequestOpen {
		return PreconditionFailedError{Reason: "request is not open"}
	}
	if chosen.Status != models.ProposalPending {
		return PreconditionFailedError{Reason: "proposal is not pending"}
	}
	for _, sib := range siblings {
		if sib.ID != chosen.ID && sib.Status == models.ProposalAccepted {
			return PreconditionFailedError{Reason: "request already has an accepted proposal"}
		}
	}

	if err := TransitionProposal(chosen, models.ProposalAccepted); err != nil {
		return err
	}
	for _, sib := range siblings {
		if sib.ID == chosen.ID || sib.Status != models.ProposalPending {
			continue
		}
		if err := TransitionProposal(sib, models.ProposalRejected); err != nil {
			return err
		}
	}
	return TransitionRequest(req, models.RequestInProgress)
}
