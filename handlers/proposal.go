package handlers

import (
	"net/http"

	"taskhive/models"
	"taskhive/services/lifecycle"
	proposalSvc "taskhive/services/proposal"

	"github.com/gin-gonic/gin"
)

// ProposalHandler exposes provider bid endpoints.
type ProposalHandler struct {
	Service   proposalSvc.ProposalService
	Lifecycle lifecycle.LifecycleService
}

// SubmitProposalHandler handles POST /api/proposals.
func (h *ProposalHandler) SubmitProposalHandler(c *gin.Context) {
	var p models.Proposal
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	p.ProviderID = c.GetString("providerID")

	created, err := h.Service.Submit(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListProposalsForRequestHandler handles GET /api/requests/:id/proposals.
// Owner only: a buyer reviews the bids on their own request.
func (h *ProposalHandler) ListProposalsForRequestHandler(c *gin.Context) {
	proposals, err := h.Service.ListByRequest(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposals": proposals})
}

// ListMyProposalsHandler handles GET /api/proposals/mine.
func (h *ProposalHandler) ListMyProposalsHandler(c *gin.Context) {
	proposals, err := h.Service.ListMine(c.Request.Context(), c.GetString("providerID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposals": proposals})
}

// RejectProposalHandler handles POST /api/proposals/:id/reject (buyer).
func (h *ProposalHandler) RejectProposalHandler(c *gin.Context) {
	if err := h.Lifecycle.RejectProposal(c.Request.Context(), c.Param("id"), c.GetString("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "proposal rejected"})
}

// WithdrawProposalHandler handles POST /api/proposals/:id/withdraw (provider).
func (h *ProposalHandler) WithdrawProposalHandler(c *gin.Context) {
	if err := h.Lifecycle.WithdrawProposal(c.Request.Context(), c.Param("id"), c.GetString("providerID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "proposal withdrawn"})
}
