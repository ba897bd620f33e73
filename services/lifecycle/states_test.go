package lifecycle

import (
	"errors"
	"testing"

	"taskhive/models"
)

func TestTransitionProposal(t *testing.T) {
	tests := []struct {
		name    string
		from    models.ProposalStatus
		to      models.ProposalStatus
		wantErr bool
	}{
		{name: "pending to accepted", from: models.ProposalPending, to: models.ProposalAccepted},
		{name: "pending to rejected", from: models.ProposalPending, to: models.ProposalRejected},
		{name: "pending to withdrawn", from: models.ProposalPending, to: models.ProposalWithdrawn},
		{name: "accepted is terminal", from: models.ProposalAccepted, to: models.ProposalRejected, wantErr: true},
		{name: "rejected is terminal", from: models.ProposalRejected, to: models.ProposalAccepted, wantErr: true},
		{name: "withdrawn is terminal", from: models.ProposalWithdrawn, to: models.ProposalPending, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.Proposal{ID: "p1", Status: tt.from}
			err := TransitionProposal(p, tt.to)
			if tt.wantErr {
				var tErr InvalidTransitionError
				if !errors.As(err, &tErr) {
					t.Fatalf("TransitionProposal() = %v, want InvalidTransitionError", err)
				}
				if p.Status != tt.from {
					t.Errorf("status mutated on invalid transition: %s", p.Status)
				}
				return
			}
			if err != nil {
				t.Fatalf("TransitionProposal() = %v, want nil", err)
			}
			if p.Status != tt.to {
				t.Errorf("status = %s, want %s", p.Status, tt.to)
			}
		})
	}
}

func TestTransitionRequest(t *testing.T) {
	tests := []struct {
		name    string
		from    models.RequestStatus
		to      models.RequestStatus
		wantErr bool
	}{
		{name: "open to in_progress", from: models.RequestOpen, to: models.RequestInProgress},
		{name: "open to cancelled", from: models.RequestOpen, to: models.RequestCancelled},
		{name: "in_progress to completed", from: models.RequestInProgress, to: models.RequestCompleted},
		{name: "in_progress to cancelled", from: models.RequestInProgress, to: models.RequestCancelled},
		{name: "open cannot complete directly", from: models.RequestOpen, to: models.RequestCompleted, wantErr: true},
		{name: "completed is terminal", from: models.RequestCompleted, to: models.RequestOpen, wantErr: true},
		{name: "cancelled is terminal", from: models.RequestCancelled, to: models.RequestInProgress, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &models.ServiceRequest{ID: "r1", Status: tt.from}
			err := TransitionRequest(r, tt.to)
			if tt.wantErr {
				var tErr InvalidTransitionError
				if !errors.As(err, &tErr) {
					t.Fatalf("TransitionRequest() = %v, want InvalidTransitionError", err)
				}
				if r.Status != tt.from {
					t.Errorf("status mutated on invalid transition: %s", r.Status)
				}
				return
			}
			if err != nil {
				t.Fatalf("TransitionRequest() = %v, want nil", err)
			}
			if r.Status != tt.to {
				t.Errorf("status = %s, want %s", r.Status, tt.to)
			}
		})
	}
}

func TestAcceptProposalModel(t *testing.T) {
	req := &models.ServiceRequest{ID: "r1", Status: models.RequestOpen}
	chosen := &models.Proposal{ID: "p2", RequestID: "r1", Status: models.ProposalPending}
	siblings := []*models.Proposal{
		{ID: "p1", RequestID: "r1", Status: models.ProposalPending},
		{ID: "p3", RequestID: "r1", Status: models.ProposalPending},
		{ID: "p4", RequestID: "r1", Status: models.ProposalWithdrawn},
	}

	if err := AcceptProposal(req, chosen, siblings); err != nil {
		t.Fatalf("AcceptProposal() = %v, want nil", err)
	}
	if chosen.Status != models.ProposalAccepted {
		t.Errorf("chosen status = %s, want accepted", chosen.Status)
	}
	if siblings[0].Status != models.ProposalRejected || siblings[1].Status != models.ProposalRejected {
		t.Errorf("pending siblings not rejected: %s, %s", siblings[0].Status, siblings[1].Status)
	}
	if siblings[2].Status != models.ProposalWithdrawn {
		t.Errorf("withdrawn sibling mutated: %s", siblings[2].Status)
	}
	if req.Status != models.RequestInProgress {
		t.Errorf("request status = %s, want in_progress", req.Status)
	}
}

func TestAcceptProposalPreconditions(t *testing.T) {
	tests := []struct {
		name     string
		req      models.ServiceRequest
		chosen   models.Proposal
		siblings []*models.Proposal
	}{
		{
			name:   "proposal belongs to another request",
			req:    models.ServiceRequest{ID: "r1", Status: models.RequestOpen},
			chosen: models.Proposal{ID: "p1", RequestID: "r2", Status: models.ProposalPending},
		},
		{
			name:   "request not open",
			req:    models.ServiceRequest{ID: "r1", Status: models.RequestInProgress},
			chosen: models.Proposal{ID: "p1", RequestID: "r1", Status: models.ProposalPending},
		},
		{
			name:   "proposal not pending",
			req:    models.ServiceRequest{ID: "r1", Status: models.RequestOpen},
			chosen: models.Proposal{ID: "p1", RequestID: "r1", Status: models.ProposalWithdrawn},
		},
		{
			name:   "sibling already accepted",
			req:    models.ServiceRequest{ID: "r1", Status: models.RequestOpen},
			chosen: models.Proposal{ID: "p1", RequestID: "r1", Status: models.ProposalPending},
			siblings: []*models.Proposal{
				{ID: "p2", RequestID: "r1", Status: models.ProposalAccepted},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, chosen := tt.req, tt.chosen
			err := AcceptProposal(&req, &chosen, tt.siblings)
			var pErr PreconditionFailedError
			if !errors.As(err, &pErr) {
				t.Fatalf("AcceptProposal() = %v, want PreconditionFailedError", err)
			}
			if req.Status != tt.req.Status || chosen.Status != tt.chosen.Status {
				t.Errorf("state mutated on precondition failure")
			}
		})
	}
}
