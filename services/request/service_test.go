package request

import (
	"context"
	"errors"
	"fmt"
	"testing"

	categoryRepo "taskhive/database/repository/category"
	requestRepo "taskhive/database/repository/request"
	"taskhive/models"
	"taskhive/services/lifecycle"
	"taskhive/services/matching"
)

type stubCategoryRepo struct{}

func (stubCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	if id != "cat-1" {
		return nil, categoryRepo.ErrNotFound
	}
	return &models.Category{ID: "cat-1", Name: "Home Repair"}, nil
}

func (stubCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) { return nil, nil }

func (stubCategoryRepo) Seed(ctx context.Context, categories []models.Category) error { return nil }

type memRequestRepo struct {
	requests map[string]*models.ServiceRequest
	nextID   int
}

func (r *memRequestRepo) GetByID(ctx context.Context, id string) (*models.ServiceRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, requestRepo.ErrNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *memRequestRepo) Create(ctx context.Context, req models.ServiceRequest) (string, error) {
	r.nextID++
	req.ID = fmt.Sprintf("r%d", r.nextID)
	if req.Status == "" {
		req.Status = models.RequestOpen
	}
	r.requests[req.ID] = &req
	return req.ID, nil
}

func (r *memRequestRepo) Update(ctx context.Context, req models.ServiceRequest) error {
	stored, ok := r.requests[req.ID]
	if !ok {
		return requestRepo.ErrNotFound
	}
	req.Status = stored.Status
	r.requests[req.ID] = &req
	return nil
}

func (r *memRequestRepo) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) error {
	req, ok := r.requests[id]
	if !ok {
		return requestRepo.ErrNotFound
	}
	req.Status = status
	return nil
}

func (r *memRequestRepo) List(ctx context.Context, q requestRepo.RequestQuery) ([]models.ServiceRequest, error) {
	var out []models.ServiceRequest
	for _, req := range r.requests {
		if len(q.Statuses) > 0 {
			hit := false
			for _, st := range q.Statuses {
				if req.Status == st {
					hit = true
				}
			}
			if !hit {
				continue
			}
		}
		if q.BuyerID != "" && req.BuyerID != q.BuyerID {
			continue
		}
		if q.CategoryID != "" && req.CategoryID != q.CategoryID {
			continue
		}
		out = append(out, *req)
	}
	return out, nil
}

func newTestService() (*DefaultRequestService, *memRequestRepo, *[]string) {
	repo := &memRequestRepo{requests: map[string]*models.ServiceRequest{}}
	var fanouts []string
	svc := &DefaultRequestService{
		RequestRepo:  repo,
		CategoryRepo: stubCategoryRepo{},
		EnqueueFanout: func(requestID string) error {
			fanouts = append(fanouts, requestID)
			return nil
		},
	}
	return svc, repo, &fanouts
}

func validRequest() models.ServiceRequest {
	return models.ServiceRequest{
		BuyerID:    "buyer-1",
		CategoryID: "cat-1",
		Title:      "Fix kitchen sink",
		Budget:     models.BudgetRange{Min: 50, Max: 150},
		Location:   &models.Location{Lat: 0, Lng: 0.01, City: "Nairobi"},
	}
}

func TestCreate(t *testing.T) {
	svc, _, fanouts := newTestService()

	created, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Create() = %v, want nil", err)
	}
	if created.Status != models.RequestOpen {
		t.Errorf("created status = %s, want open", created.Status)
	}
	if len(*fanouts) != 1 || (*fanouts)[0] != created.ID {
		t.Errorf("fan-out enqueued for %v, want [%s]", *fanouts, created.ID)
	}
}

func TestCreateFanoutFailureTolerated(t *testing.T) {
	svc, _, _ := newTestService()
	svc.EnqueueFanout = func(string) error { return fmt.Errorf("queue down") }

	if _, err := svc.Create(context.Background(), validRequest()); err != nil {
		t.Fatalf("Create() = %v; a fan-out failure must not fail creation", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newTestService()

	tests := []struct {
		name   string
		mutate func(*models.ServiceRequest)
		field  string
	}{
		{name: "missing buyer", mutate: func(r *models.ServiceRequest) { r.BuyerID = "" }, field: "buyerId"},
		{name: "blank title", mutate: func(r *models.ServiceRequest) { r.Title = "  " }, field: "title"},
		{name: "missing category", mutate: func(r *models.ServiceRequest) { r.CategoryID = "" }, field: "categoryId"},
		{name: "unknown category", mutate: func(r *models.ServiceRequest) { r.CategoryID = "cat-missing" }, field: "categoryId"},
		{name: "inverted budget", mutate: func(r *models.ServiceRequest) { r.Budget = models.BudgetRange{Min: 200, Max: 100} }, field: "budget"},
		{name: "bad latitude", mutate: func(r *models.ServiceRequest) { r.Location.Lat = 95 }, field: "lat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := svc.Create(context.Background(), req)
			var vErr matching.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Create() = %v, want ValidationError", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("ValidationError.Field = %q, want %q", vErr.Field, tt.field)
			}
		})
	}
}

func TestUpdateOnlyWhileOpen(t *testing.T) {
	svc, repo, _ := newTestService()
	created, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Create() = %v", err)
	}

	edited := *created
	edited.Title = "Fix kitchen sink and tap"
	updated, err := svc.Update(context.Background(), edited, "buyer-1")
	if err != nil {
		t.Fatalf("Update() = %v, want nil", err)
	}
	if updated.Title != edited.Title {
		t.Errorf("title = %q, want %q", updated.Title, edited.Title)
	}

	var pErr lifecycle.PreconditionFailedError
	if _, err := svc.Update(context.Background(), edited, "buyer-2"); !errors.As(err, &pErr) {
		t.Errorf("Update() by non-owner = %v, want PreconditionFailedError", err)
	}

	repo.requests[created.ID].Status = models.RequestInProgress
	if _, err := svc.Update(context.Background(), edited, "buyer-1"); !errors.As(err, &pErr) {
		t.Errorf("Update() on in_progress request = %v, want PreconditionFailedError", err)
	}
}

func TestBrowseKeyword(t *testing.T) {
	svc, _, _ := newTestService()
	first := validRequest()
	first.Description = "Leaking pipe under the sink"
	if _, err := svc.Create(context.Background(), first); err != nil {
		t.Fatalf("Create() = %v", err)
	}
	second := validRequest()
	second.Title = "Paint the fence"
	if _, err := svc.Create(context.Background(), second); err != nil {
		t.Fatalf("Create() = %v", err)
	}

	got, err := svc.Browse(context.Background(), BrowseQuery{Keyword: "pipe"})
	if err != nil {
		t.Fatalf("Browse() = %v, want nil", err)
	}
	if len(got) != 1 || got[0].Description != first.Description {
		t.Errorf("Browse(pipe) = %v, want only the plumbing request", got)
	}
}
