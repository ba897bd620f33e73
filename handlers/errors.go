package handlers

import (
	"errors"
	"net/http"

	categoryRepo "taskhive/database/repository/category"
	conversationRepo "taskhive/database/repository/conversation"
	notificationRepo "taskhive/database/repository/notification"
	proposalRepo "taskhive/database/repository/proposal"
	providerRepo "taskhive/database/repository/provider"
	requestRepo "taskhive/database/repository/request"
	userRepo "taskhive/database/repository/user"
	"taskhive/services/lifecycle"
	"taskhive/services/matching"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var notFoundErrs = []error{
	requestRepo.ErrNotFound,
	proposalRepo.ErrNotFound,
	categoryRepo.ErrNotFound,
	providerRepo.ErrNotFound,
	conversationRepo.ErrNotFound,
	notificationRepo.ErrNotFound,
	userRepo.ErrNotFound,
}

// respondError maps service errors onto HTTP statuses: validation 400,
// missing records 404, precondition and transition failures 409, the rest 500.
func respondError(c *gin.Context, err error) {
	var vErr matching.ValidationError
	var pErr lifecycle.PreconditionFailedError
	var tErr lifecycle.InvalidTransitionError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &pErr), errors.As(err, &tErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case isNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		zap.L().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func isNotFound(err error) bool {
	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
