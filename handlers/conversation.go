package handlers

import (
	"net/http"

	conversationRepo "taskhive/database/repository/conversation"

	"github.com/gin-gonic/gin"
)

// ConversationHandler exposes the conversation list. Messaging itself lives in
// a separate system; the engine only creates and lists the channels.
type ConversationHandler struct {
	Repo conversationRepo.ConversationRepository
}

// ListConversationsHandler handles GET /api/conversations.
func (h *ConversationHandler) ListConversationsHandler(c *gin.Context) {
	conversations, err := h.Repo.ListByParticipant(c.Request.Context(), c.GetString("subjectID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}
