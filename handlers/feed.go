package handlers

import (
	"net/http"
	"strconv"
	"strings"

	providerRepo "taskhive/database/repository/provider"
	"taskhive/middleware"
	"taskhive/models"
	"taskhive/services/matching"

	"github.com/gin-gonic/gin"
)

// FeedHandler serves the provider opportunity feed.
type FeedHandler struct {
	Matching     matching.MatchingService
	ProviderRepo providerRepo.ProviderRepository
}

// OpportunityFeedHandler handles GET /api/feed/opportunities. A provider with
// no stored location falls back to the location the geolocation middleware
// resolved from their IP; with neither, radius filtering is disabled and
// category/status filters still apply.
func (h *FeedHandler) OpportunityFeedHandler(c *gin.Context) {
	provider, err := h.ProviderRepo.GetByID(c.Request.Context(), c.GetString("providerID"))
	if err != nil {
		respondError(c, err)
		return
	}

	if provider.Location == nil {
		if v, ok := c.Get(middleware.ClientLocationKey); ok {
			if loc, ok := v.(*models.Location); ok {
				provider.Location = loc
			}
		}
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	q := matching.OpportunityQuery{
		Keyword:  c.Query("q"),
		Limit:    limit,
		Statuses: parseStatuses(c.Query("status")),
	}

	requests, err := h.Matching.FindOpportunities(c.Request.Context(), *provider, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func parseStatuses(raw string) []models.RequestStatus {
	if raw == "" {
		return nil
	}
	var statuses []models.RequestStatus
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, models.RequestStatus(s))
		}
	}
	return statuses
}
