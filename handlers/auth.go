package handlers

import (
	"net/http"
	"time"

	"taskhive/config"
	"taskhive/utils"

	"github.com/gin-gonic/gin"
)

// DevTokenHandler handles POST /api/auth/dev-token. Accounts live in a
// separate identity system; this endpoint mints a short-lived token for a
// known subject so the API can be exercised outside production.
func DevTokenHandler(c *gin.Context) {
	if config.IsProduction() {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var req struct {
		Subject string `json:"subject" binding:"required"`
		Role    string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.Role != "user" && req.Role != "provider" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be \"user\" or \"provider\""})
		return
	}

	token, err := utils.GenerateToken(req.Subject, req.Role, 24*time.Hour)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
