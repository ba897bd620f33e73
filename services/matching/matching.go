package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	categoryRepo "taskhive/database/repository/category"
	providerRepo "taskhive/database/repository/provider"
	requestRepo "taskhive/database/repository/request"
	"taskhive/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// feedCacheTTL bounds how stale a memoized opportunity feed may get.
const feedCacheTTL = 2 * time.Minute

// DefaultMatchingService is the production MatchingService.
type DefaultMatchingService struct {
	RequestRepo  requestRepo.RequestRepository
	CategoryRepo categoryRepo.CategoryRepository
	ProviderRepo providerRepo.ProviderRepository
	CacheClient  *redis.Client
}

// FindOpportunities retrieves the requests a provider is eligible for.
// Results are memoized in Redis for a short TTL; the filter itself is pure.
func (s *DefaultMatchingService) FindOpportunities(ctx context.Context, provider models.Provider, q OpportunityQuery) ([]models.ServiceRequest, error) {
	if len(q.Statuses) == 0 {
		q.Statuses = []models.RequestStatus{models.RequestOpen, models.RequestInProgress}
	}

	cacheKey := s.feedCacheKey(provider, q)
	if s.CacheClient != nil {
		cached, err := s.CacheClient.Get(ctx, cacheKey).Result()
		if err == nil && cached != "" {
			var requests []models.ServiceRequest
			if err := json.Unmarshal([]byte(cached), &requests); err == nil {
				return requests, nil
			}
			// If unmarshal fails, fall through to re-computation.
		}
	}

	requests, err := s.RequestRepo.List(ctx, requestRepo.RequestQuery{Statuses: q.Statuses})
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	categories, err := s.categoryIndex(ctx)
	if err != nil {
		return nil, err
	}

	matched := FilterOpportunities(provider, requests, categories, q)

	if s.CacheClient != nil {
		if data, err := json.Marshal(matched); err == nil {
			s.CacheClient.Set(ctx, cacheKey, data, feedCacheTTL)
		}
	}

	return matched, nil
}

// FindEligibleRecipients computes the fan-out set for a newly created request.
// It is a pure filter over its inputs, so retrying a failed notification batch
// against the same request recomputes the identical recipient set.
func (s *DefaultMatchingService) FindEligibleRecipients(ctx context.Context, req models.ServiceRequest) ([]string, error) {
	cat, err := s.CategoryRepo.GetByID(ctx, req.CategoryID)
	if err == categoryRepo.ErrNotFound {
		zap.L().Warn("request references unknown category, no providers notified",
			zap.String("requestId", req.ID), zap.String("categoryId", req.CategoryID))
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load category %s: %w", req.CategoryID, err)
	}

	providers, err := s.ProviderRepo.ListByCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers for category %s: %w", req.CategoryID, err)
	}

	return EligibleRecipients(*cat, req, providers), nil
}

// FilterOpportunities is the pure filter behind FindOpportunities: status set,
// declared skill category, radius policy and optional keyword, ordered newest
// first. No relevance scoring beyond boolean inclusion.
func FilterOpportunities(provider models.Provider, requests []models.ServiceRequest, categories map[string]models.Category, q OpportunityQuery) []models.ServiceRequest {
	statuses := make(map[models.RequestStatus]bool, len(q.Statuses))
	for _, st := range q.Statuses {
		statuses[st] = true
	}

	matched := make([]models.ServiceRequest, 0, len(requests))
	for _, req := range requests {
		if len(statuses) > 0 && !statuses[req.Status] {
			continue
		}
		if !provider.HasCategory(req.CategoryID) {
			continue
		}
		cat, ok := categories[req.CategoryID]
		if !ok {
			// Unknown category: treat as "no match" rather than failing the feed.
			continue
		}
		if !IsWithinRange(cat, req.Location, provider.Location) {
			continue
		}
		if q.Keyword != "" && !MatchesKeyword(req, q.Keyword) {
			continue
		}
		matched = append(matched, req)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched
}

// EligibleRecipients returns the IDs of providers that declare the request's
// category and pass the radius policy. Pure and deterministic for the same
// inputs, so notification retries are safe.
func EligibleRecipients(cat models.Category, req models.ServiceRequest, providers []models.Provider) []string {
	recipients := make([]string, 0, len(providers))
	for _, p := range providers {
		if !p.HasCategory(req.CategoryID) {
			continue
		}
		if !IsWithinRange(cat, req.Location, p.Location) {
			continue
		}
		recipients = append(recipients, p.ID)
	}
	return recipients
}

// MatchesKeyword reports whether the free-text query hits the request's
// title, description, city or address, case-insensitively.
func MatchesKeyword(req models.ServiceRequest, keyword string) bool {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return true
	}
	haystacks := []string{req.Title, req.Description}
	if req.Location != nil {
		haystacks = append(haystacks, req.Location.City, req.Location.Address)
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func (s *DefaultMatchingService) feedCacheKey(provider models.Provider, q OpportunityQuery) string {
	key := struct {
		ProviderID string
		Location   *models.Location
		Categories []string
		Query      OpportunityQuery
	}{provider.ID, provider.Location, provider.CategoryIDs, q}
	data, _ := json.Marshal(key)
	return fmt.Sprintf("feed:%x", data)
}

func (s *DefaultMatchingService) categoryIndex(ctx context.Context) (map[string]models.Category, error) {
	cats, err := s.CategoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	index := make(map[string]models.Category, len(cats))
	for _, c := range cats {
		index[c.ID] = c
	}
	return index, nil
}
