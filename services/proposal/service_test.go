package proposal

import (
	"context"
	"errors"
	"testing"

	proposalRepo "taskhive/database/repository/proposal"
	requestRepo "taskhive/database/repository/request"
	"taskhive/models"
	"taskhive/services/lifecycle"
	"taskhive/services/matching"
)

type stubRequestRepo struct {
	request *models.ServiceRequest
}

func (r *stubRequestRepo) GetByID(ctx context.Context, id string) (*models.ServiceRequest, error) {
	if r.request == nil || r.request.ID != id {
		return nil, requestRepo.ErrNotFound
	}
	cp := *r.request
	return &cp, nil
}

func (r *stubRequestRepo) Create(ctx context.Context, req models.ServiceRequest) (string, error) {
	return req.ID, nil
}

func (r *stubRequestRepo) Update(ctx context.Context, req models.ServiceRequest) error { return nil }

func (r *stubRequestRepo) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) error {
	return nil
}

func (r *stubRequestRepo) List(ctx context.Context, q requestRepo.RequestQuery) ([]models.ServiceRequest, error) {
	return nil, nil
}

type stubProposalRepo struct {
	proposals map[string]*models.Proposal
}

func (r *stubProposalRepo) GetByID(ctx context.Context, id string) (*models.Proposal, error) {
	p, ok := r.proposals[id]
	if !ok {
		return nil, proposalRepo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProposalRepo) Create(ctx context.Context, p models.Proposal) (string, error) {
	if p.ID == "" {
		p.ID = "p-new"
	}
	r.proposals[p.ID] = &p
	return p.ID, nil
}

func (r *stubProposalRepo) ListByRequest(ctx context.Context, requestID string) ([]models.Proposal, error) {
	var out []models.Proposal
	for _, p := range r.proposals {
		if p.RequestID == requestID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProposalRepo) ListByRequestAndStatus(ctx context.Context, requestID string, status models.ProposalStatus) ([]models.Proposal, error) {
	return nil, nil
}

func (r *stubProposalRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Proposal, error) {
	var out []models.Proposal
	for _, p := range r.proposals {
		if p.ProviderID == providerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProposalRepo) UpdateStatus(ctx context.Context, id string, status models.ProposalStatus) error {
	return nil
}

func (r *stubProposalRepo) ExistsForProvider(ctx context.Context, requestID, providerID string) (bool, error) {
	for _, p := range r.proposals {
		if p.RequestID == requestID && p.ProviderID == providerID {
			return true, nil
		}
	}
	return false, nil
}

type nopNotifier struct {
	sent int
}

func (n *nopNotifier) Send(ctx context.Context, recipientID, role, typ, title, body string, payload map[string]string) error {
	n.sent++
	return nil
}

func (n *nopNotifier) ListForRecipient(ctx context.Context, recipientID string, limit int64) ([]models.Notification, error) {
	return nil, nil
}

func (n *nopNotifier) MarkRead(ctx context.Context, id string) error { return nil }

func newSubmitService(status models.RequestStatus) (*DefaultProposalService, *stubProposalRepo, *nopNotifier) {
	props := &stubProposalRepo{proposals: map[string]*models.Proposal{}}
	notifier := &nopNotifier{}
	svc := &DefaultProposalService{
		RequestRepo: &stubRequestRepo{request: &models.ServiceRequest{
			ID: "r1", BuyerID: "buyer-1", Title: "Fix kitchen sink", Status: status,
		}},
		ProposalRepo: props,
		Notifier:     notifier,
	}
	return svc, props, notifier
}

func validProposal() models.Proposal {
	return models.Proposal{
		RequestID:    "r1",
		BidPrice:     120,
		TimelineDays: 3,
		CoverLetter:  "I can start tomorrow.",
	}
}

func TestSubmit(t *testing.T) {
	svc, props, notifier := newSubmitService(models.RequestOpen)

	p := validProposal()
	p.ProviderID = "prov-a"
	created, err := svc.Submit(context.Background(), p)
	if err != nil {
		t.Fatalf("Submit() = %v, want nil", err)
	}
	if created.Status != models.ProposalPending {
		t.Errorf("created status = %s, want pending", created.Status)
	}
	if len(props.proposals) != 1 {
		t.Errorf("persisted %d proposals, want 1", len(props.proposals))
	}
	if notifier.sent != 1 {
		t.Errorf("buyer notifications = %d, want 1", notifier.sent)
	}
}

func TestSubmitDuplicateRejected(t *testing.T) {
	svc, props, _ := newSubmitService(models.RequestOpen)
	props.proposals["p1"] = &models.Proposal{
		ID: "p1", RequestID: "r1", ProviderID: "prov-a", Status: models.ProposalPending,
	}

	p := validProposal()
	p.ProviderID = "prov-a"
	_, err := svc.Submit(context.Background(), p)
	var pErr lifecycle.PreconditionFailedError
	if !errors.As(err, &pErr) {
		t.Fatalf("Submit() duplicate = %v, want PreconditionFailedError", err)
	}
	if len(props.proposals) != 1 {
		t.Errorf("duplicate was persisted")
	}
}

func TestSubmitClosedRequestRejected(t *testing.T) {
	for _, status := range []models.RequestStatus{
		models.RequestInProgress, models.RequestCompleted, models.RequestCancelled,
	} {
		svc, _, _ := newSubmitService(status)
		p := validProposal()
		p.ProviderID = "prov-a"
		_, err := svc.Submit(context.Background(), p)
		var pErr lifecycle.PreconditionFailedError
		if !errors.As(err, &pErr) {
			t.Errorf("Submit() on %s request = %v, want PreconditionFailedError", status, err)
		}
	}
}

func TestSubmitValidation(t *testing.T) {
	svc, _, _ := newSubmitService(models.RequestOpen)

	tests := []struct {
		name   string
		mutate func(*models.Proposal)
		field  string
	}{
		{name: "missing provider", mutate: func(p *models.Proposal) { p.ProviderID = "" }, field: "providerId"},
		{name: "missing request", mutate: func(p *models.Proposal) { p.RequestID = "" }, field: "requestId"},
		{name: "zero bid", mutate: func(p *models.Proposal) { p.BidPrice = 0 }, field: "bidPrice"},
		{name: "negative timeline", mutate: func(p *models.Proposal) { p.TimelineDays = -1 }, field: "timelineDays"},
		{name: "blank cover letter", mutate: func(p *models.Proposal) { p.CoverLetter = "   " }, field: "coverLetter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProposal()
			p.ProviderID = "prov-a"
			tt.mutate(&p)
			_, err := svc.Submit(context.Background(), p)
			var vErr matching.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Submit() = %v, want ValidationError", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("ValidationError.Field = %q, want %q", vErr.Field, tt.field)
			}
		})
	}
}

func TestSubmitUnknownRequest(t *testing.T) {
	svc, _, _ := newSubmitService(models.RequestOpen)
	p := validProposal()
	p.ProviderID = "prov-a"
	p.RequestID = "r-missing"
	_, err := svc.Submit(context.Background(), p)
	if !errors.Is(err, requestRepo.ErrNotFound) {
		t.Fatalf("Submit() = %v, want ErrNotFound", err)
	}
}
