package handlers

import (
	"net/http"
	"strconv"

	"taskhive/models"
	"taskhive/services/lifecycle"
	requestSvc "taskhive/services/request"

	"github.com/gin-gonic/gin"
)

// RequestHandler exposes buyer-side request endpoints.
type RequestHandler struct {
	Service   requestSvc.RequestService
	Lifecycle lifecycle.LifecycleService
}

// CreateRequestHandler handles POST /api/requests.
func (h *RequestHandler) CreateRequestHandler(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	req.BuyerID = c.GetString("userID")

	created, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetRequestHandler handles GET /api/requests/:id.
func (h *RequestHandler) GetRequestHandler(c *gin.Context) {
	req, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// UpdateRequestHandler handles PUT /api/requests/:id.
func (h *RequestHandler) UpdateRequestHandler(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	req.ID = c.Param("id")

	updated, err := h.Service.Update(c.Request.Context(), req, c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// BrowseRequestsHandler handles GET /api/requests (public feed of open requests).
func (h *RequestHandler) BrowseRequestsHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
	requests, err := h.Service.Browse(c.Request.Context(), requestSvc.BrowseQuery{
		CategoryID: c.Query("category"),
		Keyword:    c.Query("q"),
		Limit:      limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// ListMyRequestsHandler handles GET /api/requests/mine.
func (h *RequestHandler) ListMyRequestsHandler(c *gin.Context) {
	requests, err := h.Service.ListMine(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// AcceptProposalHandler handles POST /api/requests/:id/accept/:proposalID.
func (h *RequestHandler) AcceptProposalHandler(c *gin.Context) {
	result, err := h.Lifecycle.AcceptProposal(c.Request.Context(), c.Param("id"), c.Param("proposalID"), c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelRequestHandler handles POST /api/requests/:id/cancel.
func (h *RequestHandler) CancelRequestHandler(c *gin.Context) {
	if err := h.Lifecycle.CancelRequest(c.Request.Context(), c.Param("id"), c.GetString("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "request cancelled"})
}

// CompleteRequestHandler handles POST /api/requests/:id/complete.
func (h *RequestHandler) CompleteRequestHandler(c *gin.Context) {
	if err := h.Lifecycle.CompleteRequest(c.Request.Context(), c.Param("id"), c.GetString("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "request completed"})
}
