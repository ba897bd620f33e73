package matching

import (
	"reflect"
	"testing"
	"time"

	"taskhive/models"
)

var testCategories = map[string]models.Category{
	"cat-local":  {ID: "cat-local", Name: "Home Repair", MatchRadiusKm: radius(5)},
	"cat-online": {ID: "cat-online", Name: "Tutoring"},
}

func openRequest(id, categoryID string, loc *models.Location, createdAt time.Time) models.ServiceRequest {
	return models.ServiceRequest{
		ID:         id,
		BuyerID:    "buyer-1",
		CategoryID: categoryID,
		Title:      "Fix kitchen sink",
		Status:     models.RequestOpen,
		Location:   loc,
		CreatedAt:  createdAt,
	}
}

func TestFilterOpportunities(t *testing.T) {
	now := time.Now()
	provider := models.Provider{
		ID:          "prov-1",
		CategoryIDs: []string{"cat-local", "cat-online"},
		Location:    &models.Location{Lat: 0, Lng: 0},
	}

	inRange := openRequest("req-near", "cat-local", &models.Location{Lat: 0, Lng: 0.03}, now.Add(-1*time.Hour))
	outOfRange := openRequest("req-far", "cat-local", &models.Location{Lat: 0, Lng: 0.06}, now)
	otherCategory := openRequest("req-other", "cat-unknown-skill", &models.Location{Lat: 0, Lng: 0.01}, now)
	online := openRequest("req-online", "cat-online", nil, now.Add(-2*time.Hour))
	cancelled := openRequest("req-cancelled", "cat-local", &models.Location{Lat: 0, Lng: 0.01}, now)
	cancelled.Status = models.RequestCancelled
	unknownCategory := openRequest("req-ghost", "cat-deleted", nil, now)

	requests := []models.ServiceRequest{inRange, outOfRange, otherCategory, online, cancelled, unknownCategory}
	q := OpportunityQuery{Statuses: []models.RequestStatus{models.RequestOpen}}

	got := FilterOpportunities(provider, requests, testCategories, q)

	var gotIDs []string
	for _, r := range got {
		gotIDs = append(gotIDs, r.ID)
	}
	// Newest first: req-near (1h old) before req-online (2h old).
	want := []string{"req-near", "req-online"}
	if !reflect.DeepEqual(gotIDs, want) {
		t.Errorf("FilterOpportunities() = %v, want %v", gotIDs, want)
	}
}

func TestFilterOpportunitiesKeyword(t *testing.T) {
	provider := models.Provider{ID: "prov-1", CategoryIDs: []string{"cat-online"}}
	requests := []models.ServiceRequest{
		{ID: "req-1", CategoryID: "cat-online", Title: "Math tutoring for exams", Status: models.RequestOpen},
		{ID: "req-2", CategoryID: "cat-online", Title: "Logo design", Status: models.RequestOpen},
	}

	got := FilterOpportunities(provider, requests, testCategories, OpportunityQuery{
		Statuses: []models.RequestStatus{models.RequestOpen},
		Keyword:  "TUTORING",
	})
	if len(got) != 1 || got[0].ID != "req-1" {
		t.Errorf("keyword filter returned %v, want only req-1", got)
	}
}

func TestFilterOpportunitiesLimit(t *testing.T) {
	provider := models.Provider{ID: "prov-1", CategoryIDs: []string{"cat-online"}}
	var requests []models.ServiceRequest
	for i := 0; i < 5; i++ {
		requests = append(requests, models.ServiceRequest{
			ID:         string(rune('a' + i)),
			CategoryID: "cat-online",
			Status:     models.RequestOpen,
			CreatedAt:  time.Now().Add(time.Duration(i) * time.Minute),
		})
	}

	got := FilterOpportunities(provider, requests, testCategories, OpportunityQuery{
		Statuses: []models.RequestStatus{models.RequestOpen},
		Limit:    2,
	})
	if len(got) != 2 {
		t.Fatalf("limit not applied: got %d results", len(got))
	}
	if !got[0].CreatedAt.After(got[1].CreatedAt) {
		t.Errorf("results not ordered newest first")
	}
}

func TestEligibleRecipients(t *testing.T) {
	cat := testCategories["cat-local"]
	req := openRequest("req-1", "cat-local", &models.Location{Lat: 0, Lng: 0}, time.Now())

	providers := []models.Provider{
		{ID: "prov-near", CategoryIDs: []string{"cat-local"}, Location: &models.Location{Lat: 0, Lng: 0.03}},
		{ID: "prov-far", CategoryIDs: []string{"cat-local"}, Location: &models.Location{Lat: 0, Lng: 0.06}},
		{ID: "prov-no-loc", CategoryIDs: []string{"cat-local"}},
		{ID: "prov-other", CategoryIDs: []string{"cat-online"}, Location: &models.Location{Lat: 0, Lng: 0}},
	}

	got := EligibleRecipients(cat, req, providers)
	want := []string{"prov-near", "prov-no-loc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EligibleRecipients() = %v, want %v", got, want)
	}

	// Recomputing against the same inputs must yield the identical set, so a
	// retried notification batch never targets different providers.
	again := EligibleRecipients(cat, req, providers)
	if !reflect.DeepEqual(got, again) {
		t.Errorf("EligibleRecipients() not deterministic: %v then %v", got, again)
	}
}

func TestMatchesKeyword(t *testing.T) {
	req := models.ServiceRequest{
		Title:       "Deep clean apartment",
		Description: "Two bedrooms, one bath",
		Location:    &models.Location{City: "Nairobi", Address: "Westlands Rd"},
	}

	tests := []struct {
		keyword string
		want    bool
	}{
		{"clean", true},
		{"BEDROOMS", true},
		{"nairobi", true},
		{"westlands", true},
		{"plumbing", false},
		{"", true},
		{"  ", true},
	}
	for _, tt := range tests {
		if got := MatchesKeyword(req, tt.keyword); got != tt.want {
			t.Errorf("MatchesKeyword(%q) = %v, want %v", tt.keyword, got, tt.want)
		}
	}
}
